package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPasscodeNotSet is returned when the passcode table holds no record,
	// i.e. no custom passcode has ever been configured on this device. The
	// verifier maps it to the unknown outcome, which routes the user to the
	// passcode-creation flow instead of a retry prompt.
	ErrPasscodeNotSet = errors.New("custom passcode not set")

	// ErrFingerprintNotRecorded is returned when no biometric-enrollment
	// snapshot has been recorded yet (no successful unlock happened on this
	// device so far).
	ErrFingerprintNotRecorded = errors.New("biometrics fingerprint not recorded")
)
