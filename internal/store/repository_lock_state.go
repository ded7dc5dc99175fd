package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/models"
)

// lockStateRepository is the SQLite-backed implementation of
// [LockStateRepository]. The passcode and biometrics_state tables are
// single-row (id = 1 enforced by a CHECK constraint); writes are upserts.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type lockStateRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewLockStateRepository constructs a [LockStateRepository] backed by the
// provided database connection and logger.
func NewLockStateRepository(db *DB, logger *logger.Logger) LockStateRepository {
	logger.Debug().Msg("creating lock state repository")
	return &lockStateRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// GetPasscode implements [LockStateRepository].
//
// Error handling:
//   - empty result set → [ErrPasscodeNotSet];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *lockStateRepository) GetPasscode(ctx context.Context) (models.StoredPasscode, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("blob", "salt", "created_at").
		From("passcode").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.StoredPasscode{}, fmt.Errorf("build passcode query: %w", err)
	}

	var passcode models.StoredPasscode
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&passcode.Blob, &passcode.Salt, &passcode.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredPasscode{}, ErrPasscodeNotSet
		}
		log.Err(err).Str("func", "*lockStateRepository.GetPasscode").Msg("error: scanning error")
		return models.StoredPasscode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return passcode, nil
}

// SavePasscode implements [LockStateRepository]. The upsert keeps the table
// single-row: a second SavePasscode replaces the first record in place.
func (r *lockStateRepository) SavePasscode(ctx context.Context, passcode models.StoredPasscode) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("passcode").
		Columns("id", "blob", "salt", "created_at").
		Values(1, passcode.Blob, passcode.Salt, passcode.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET blob = excluded.blob, salt = excluded.salt, created_at = excluded.created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build passcode upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*lockStateRepository.SavePasscode").Msg("failed to execute upsert for passcode")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeletePasscode implements [LockStateRepository]. Deleting an absent
// passcode is a no-op, not an error.
func (r *lockStateRepository) DeletePasscode(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("passcode").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build passcode delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*lockStateRepository.DeletePasscode").Msg("failed to delete passcode")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GetBiometricsFingerprint implements [LockStateRepository].
//
// Error handling:
//   - empty result set → [ErrFingerprintNotRecorded];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *lockStateRepository) GetBiometricsFingerprint(ctx context.Context) (models.BiometricsFingerprint, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("digest", "recorded_at").
		From("biometrics_state").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.BiometricsFingerprint{}, fmt.Errorf("build fingerprint query: %w", err)
	}

	var fingerprint models.BiometricsFingerprint
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&fingerprint.Digest, &fingerprint.RecordedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BiometricsFingerprint{}, ErrFingerprintNotRecorded
		}
		log.Err(err).Str("func", "*lockStateRepository.GetBiometricsFingerprint").Msg("error: scanning error")
		return models.BiometricsFingerprint{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return fingerprint, nil
}

// SaveBiometricsFingerprint implements [LockStateRepository].
func (r *lockStateRepository) SaveBiometricsFingerprint(ctx context.Context, fingerprint models.BiometricsFingerprint) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("biometrics_state").
		Columns("id", "digest", "recorded_at").
		Values(1, fingerprint.Digest, fingerprint.RecordedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET digest = excluded.digest, recorded_at = excluded.recorded_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build fingerprint upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*lockStateRepository.SaveBiometricsFingerprint").Msg("failed to execute upsert for fingerprint")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// RecordUnlockEvent implements [LockStateRepository].
func (r *lockStateRepository) RecordUnlockEvent(ctx context.Context, event models.UnlockEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("unlock_events").
		Columns("trace_id", "scenario", "outcome", "occurred_at").
		Values(event.TraceID, event.Scenario.String(), event.Outcome.String(), event.OccurredAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build unlock event insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*lockStateRepository.RecordUnlockEvent").
			Str("trace_id", event.TraceID).
			Msg("failed to insert unlock event")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
