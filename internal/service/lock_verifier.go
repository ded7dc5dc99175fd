package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/adapter"
	"github.com/MKhiriev/go-app-lock/internal/crypto"
	"github.com/MKhiriev/go-app-lock/internal/device"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/store"
	"github.com/MKhiriev/go-app-lock/internal/utils"
	"github.com/MKhiriev/go-app-lock/models"
)

type lockVerifierService struct {
	device    device.Authenticator
	session   adapter.SessionAdapter
	keychain  crypto.KeyChainService
	lockStore store.LockStateRepository

	deviceSecret string

	uuid *utils.UUIDGenerator
	now  func() time.Time

	mu           sync.Mutex
	inFlight     bool
	lastScenario models.AuthenticationScenario

	logger *logger.Logger
}

// NewLockVerifier constructs the [CredentialVerifier]. deviceSecret is the
// machine-bound secret the sealing key of the custom passcode is derived
// from; it never reaches the store or the network.
func NewLockVerifier(deviceAuth device.Authenticator, session adapter.SessionAdapter, keychain crypto.KeyChainService, lockStore store.LockStateRepository, deviceSecret string, logger *logger.Logger) CredentialVerifier {
	return &lockVerifierService{
		device:       deviceAuth,
		session:      session,
		keychain:     keychain,
		lockStore:    lockStore,
		deviceSecret: deviceSecret,
		uuid:         utils.NewUUIDGenerator(),
		now:          time.Now,
		logger:       logger,
	}
}

// EvaluateDeviceAuthentication implements [CredentialVerifier].
func (v *lockVerifierService) EvaluateDeviceAuthentication(ctx context.Context, scenario models.AuthenticationScenario, reason string) (models.VerificationOutcome, error) {
	if !v.begin(scenario) {
		return models.OutcomeUnknown, ErrChallengeInFlight
	}
	defer v.end()

	// A reconfigured enrollment (new finger, re-enrolled face) must not
	// silently satisfy the challenge: re-enrollment is indistinguishable
	// from tampering, so the fallback secret is demanded instead.
	changed, err := v.enrollmentChanged(ctx)
	if err != nil {
		v.logger.Warn().Str("func", "EvaluateDeviceAuthentication").Msgf("enrollment check failed, degrading to fallback: %v", err)
		changed = true
	}
	if changed {
		v.audit(ctx, scenario, models.OutcomeNeedsAccountPassword)
		return models.OutcomeNeedsAccountPassword, nil
	}

	result, err := v.device.Evaluate(ctx, scenario, reason)
	if err != nil {
		return models.OutcomeDenied, fmt.Errorf("device challenge: %w", err)
	}

	if result.Outcome == models.OutcomeGranted {
		if scenario == models.ScenarioDatabaseLock {
			if err := v.session.UnlockDatabase(ctx, result.Proof); err != nil {
				// The device said yes but the storage layer rejected
				// the proof; never grant on inconsistent state.
				v.logger.Error().Str("func", "EvaluateDeviceAuthentication").Msgf("database unlock rejected: %v", err)
				v.audit(ctx, scenario, models.OutcomeNeedsAccountPassword)
				return models.OutcomeNeedsAccountPassword, nil
			}
		}
		v.snapshotEnrollment(ctx)
	}

	v.audit(ctx, scenario, result.Outcome)
	return result.Outcome, nil
}

// VerifyAccountPassword implements [CredentialVerifier].
func (v *lockVerifierService) VerifyAccountPassword(ctx context.Context, password string) (models.VerificationOutcome, error) {
	outcome, err := v.session.VerifyPassword(ctx, password)
	if err != nil {
		return outcome, fmt.Errorf("verify account password: %w", err)
	}

	if outcome == models.OutcomeValidated {
		v.snapshotEnrollment(ctx)
	}

	v.audit(ctx, v.challengeScenario(), outcome)
	return outcome, nil
}

// VerifyCustomPasscode implements [CredentialVerifier].
func (v *lockVerifierService) VerifyCustomPasscode(ctx context.Context, passcode string) (models.VerificationOutcome, error) {
	stored, err := v.lockStore.GetPasscode(ctx)
	if errors.Is(err, store.ErrPasscodeNotSet) {
		// Not an error: the presentation layer routes this to the
		// passcode-creation flow.
		return models.OutcomeUnknown, nil
	}
	if err != nil {
		return models.OutcomeUnknown, fmt.Errorf("load passcode: %w", err)
	}

	key := v.keychain.DeriveSealingKey(v.deviceSecret, stored.Salt)
	cleartext, err := v.keychain.OpenPasscode(stored.Blob, key)
	if err != nil {
		return models.OutcomeUnknown, fmt.Errorf("open sealed passcode: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(cleartext), []byte(passcode)) != 1 {
		v.audit(ctx, v.challengeScenario(), models.OutcomeDenied)
		return models.OutcomeDenied, nil
	}

	v.snapshotEnrollment(ctx)
	v.audit(ctx, v.challengeScenario(), models.OutcomeValidated)
	return models.OutcomeValidated, nil
}

// CreateCustomPasscode implements [CredentialVerifier].
func (v *lockVerifierService) CreateCustomPasscode(ctx context.Context, passcode string) error {
	salt, err := v.keychain.GenerateSealingSalt()
	if err != nil {
		return fmt.Errorf("generate sealing salt: %w", err)
	}

	key := v.keychain.DeriveSealingKey(v.deviceSecret, salt)
	blob, err := v.keychain.SealPasscode(passcode, key)
	if err != nil {
		return fmt.Errorf("seal passcode: %w", err)
	}

	record := models.StoredPasscode{Blob: blob, Salt: salt, CreatedAt: v.now()}
	if err := v.lockStore.SavePasscode(ctx, record); err != nil {
		return fmt.Errorf("save passcode: %w", err)
	}

	v.logger.Info().Str("func", "CreateCustomPasscode").Msg("custom passcode created")
	return nil
}

// HasCustomPasscode implements [CredentialVerifier].
func (v *lockVerifierService) HasCustomPasscode(ctx context.Context) bool {
	_, err := v.lockStore.GetPasscode(ctx)
	return err == nil
}

// begin claims the single challenge slot. The fallback verifications are not
// guarded: they are a continuation of the device challenge that already
// completed, and the state machine never issues them re-entrantly.
func (v *lockVerifierService) begin(scenario models.AuthenticationScenario) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.inFlight {
		return false
	}
	v.inFlight = true
	v.lastScenario = scenario
	return true
}

func (v *lockVerifierService) end() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.inFlight = false
}

// challengeScenario returns the scenario of the most recent device
// challenge. Fallback verifications always continue one, so the value is
// accurate for audit purposes.
func (v *lockVerifierService) challengeScenario() models.AuthenticationScenario {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastScenario
}

func (v *lockVerifierService) enrollmentChanged(ctx context.Context) (bool, error) {
	stored, err := v.lockStore.GetBiometricsFingerprint(ctx)
	if errors.Is(err, store.ErrFingerprintNotRecorded) {
		// First unlock on this device, nothing to compare against.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load enrollment fingerprint: %w", err)
	}

	descriptor, err := v.device.Enrollment(ctx)
	if errors.Is(err, device.ErrNoEnrollment) {
		// A fingerprint was recorded earlier but the device now has no
		// enrollment at all: the descriptor changed.
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read enrollment descriptor: %w", err)
	}

	return !stored.Equal(v.keychain.FingerprintEnrollment(descriptor)), nil
}

// snapshotEnrollment records the current enrollment fingerprint after a
// successful verification. Failures are logged, not returned: the unlock
// already happened and must not be rolled back by a bookkeeping write.
func (v *lockVerifierService) snapshotEnrollment(ctx context.Context) {
	descriptor, err := v.device.Enrollment(ctx)
	if err != nil {
		v.logger.Debug().Str("func", "snapshotEnrollment").Msgf("no enrollment to snapshot: %v", err)
		return
	}

	fingerprint := v.keychain.FingerprintEnrollment(descriptor)
	if err := v.lockStore.SaveBiometricsFingerprint(ctx, fingerprint); err != nil {
		v.logger.Error().Str("func", "snapshotEnrollment").Msgf("save enrollment fingerprint: %v", err)
	}
}

func (v *lockVerifierService) audit(ctx context.Context, scenario models.AuthenticationScenario, outcome models.VerificationOutcome) {
	event := models.UnlockEvent{
		TraceID:    v.uuid.Generate(),
		Scenario:   scenario,
		Outcome:    outcome,
		OccurredAt: v.now(),
	}

	if err := v.lockStore.RecordUnlockEvent(ctx, event); err != nil {
		v.logger.Error().Str("func", "audit").Msgf("record unlock event: %v", err)
	}
}
