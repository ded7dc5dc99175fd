package models

// VerificationOutcome is the tagged result of a single credential check.
// It exists only for the duration of one challenge and is never persisted.
type VerificationOutcome int

const (
	// OutcomeGranted means the device challenge succeeded.
	OutcomeGranted VerificationOutcome = iota
	// OutcomeValidated means the submitted password or passcode matched.
	OutcomeValidated
	// OutcomeDenied means the credential was rejected or the device prompt
	// was cancelled by the user.
	OutcomeDenied
	// OutcomeNeedsAccountPassword means silent evaluation is not possible
	// (no biometrics enrolled, policy forbids it, or the enrolled
	// biometrics changed since the last unlock); a fallback secret is
	// required.
	OutcomeNeedsAccountPassword
	// OutcomeUnknown means verification could not be performed because
	// prerequisite state is missing, e.g. no passcode has ever been set.
	OutcomeUnknown
	// OutcomeTimeout means the remote verification did not complete in time.
	OutcomeTimeout
)

// Succeeded reports whether the outcome unlocks the app.
func (o VerificationOutcome) Succeeded() bool {
	return o == OutcomeGranted || o == OutcomeValidated
}

// String implements [fmt.Stringer] for log output.
func (o VerificationOutcome) String() string {
	switch o {
	case OutcomeGranted:
		return "granted"
	case OutcomeValidated:
		return "validated"
	case OutcomeDenied:
		return "denied"
	case OutcomeNeedsAccountPassword:
		return "needsAccountPassword"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "invalid"
	}
}

// AuthenticationState is the lock challenge state machine's state. It starts
// as [AuthNeeded] on construction or explicit re-arm.
type AuthenticationState int

const (
	// AuthNeeded means a challenge must be issued on the next lock check.
	AuthNeeded AuthenticationState = iota
	// AuthCancelled means the user dismissed the challenge or supplied an
	// empty secret; only an explicit re-arm leads back to AuthNeeded.
	AuthCancelled
	// AuthPendingPassword means a device challenge reported that a fallback
	// secret (account password or custom passcode) is required.
	AuthPendingPassword
)

// String implements [fmt.Stringer] for log output.
func (s AuthenticationState) String() string {
	switch s {
	case AuthNeeded:
		return "needed"
	case AuthCancelled:
		return "cancelled"
	case AuthPendingPassword:
		return "pendingPassword"
	default:
		return "invalid"
	}
}

// Update applies a device-challenge outcome to the state. Granted outcomes
// leave the state untouched: resolution is tracked by the gate's computed
// lock check, not by a state constant.
func (s *AuthenticationState) Update(outcome VerificationOutcome) {
	switch outcome {
	case OutcomeDenied:
		*s = AuthCancelled
	case OutcomeNeedsAccountPassword:
		*s = AuthPendingPassword
	}
}
