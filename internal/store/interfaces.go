package store

//go:generate mockgen -source=interfaces.go -destination=../mock/lock_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-app-lock/models"
)

// LockStateRepository is the contract for the device-local lock store. It
// holds exactly one sealed custom passcode, one biometric-enrollment
// fingerprint, and the unlock audit trail.
//
// Implementations must distinguish "record absent" from "query failed":
// absence is a well-known state the presentation layer reacts to (the
// passcode-creation flow), not an error to retry.
type LockStateRepository interface {
	// GetPasscode loads the sealed custom passcode.
	// Returns [ErrPasscodeNotSet] if no passcode has ever been stored.
	GetPasscode(ctx context.Context) (models.StoredPasscode, error)

	// SavePasscode stores the sealed passcode, replacing any previous one.
	SavePasscode(ctx context.Context, passcode models.StoredPasscode) error

	// DeletePasscode removes the stored passcode. Deleting an absent
	// passcode is a no-op.
	DeletePasscode(ctx context.Context) error

	// GetBiometricsFingerprint loads the last recorded enrollment snapshot.
	// Returns [ErrFingerprintNotRecorded] if no unlock has recorded one yet.
	GetBiometricsFingerprint(ctx context.Context) (models.BiometricsFingerprint, error)

	// SaveBiometricsFingerprint stores the enrollment snapshot, replacing
	// any previous one. Called on every successful unlock.
	SaveBiometricsFingerprint(ctx context.Context, fingerprint models.BiometricsFingerprint) error

	// RecordUnlockEvent appends one row to the unlock audit trail.
	RecordUnlockEvent(ctx context.Context, event models.UnlockEvent) error
}
