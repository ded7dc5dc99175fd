package models

import "time"

// LockConfiguration is the immutable per-session lock policy. It is supplied
// by the hosting application (team policy or user settings) and is read-only
// to the lock core.
type LockConfiguration struct {
	// Timeout is the inactivity window after which the screen lock engages.
	Timeout time.Duration `json:"timeout"`

	// Forced marks the lock as non-dismissable: the challenge cannot be
	// cancelled without a successful verification.
	Forced bool `json:"forced"`

	// RequireBiometrics requires biometric or custom-passcode verification
	// instead of plain device credentials.
	RequireBiometrics bool `json:"require_biometrics"`

	// UseCustomPasscode selects the app-specific passcode as the fallback
	// secret instead of the account password.
	UseCustomPasscode bool `json:"use_custom_passcode"`

	// InformUserOfForcedLock shows a one-time interstitial before the first
	// forced-lock challenge, so the user learns why the app demands a
	// passcode it never asked for before.
	InformUserOfForcedLock bool `json:"inform_user_of_forced_lock"`
}

// AuthenticationScenario describes the security sensitivity of a challenge.
// Database lock dominates screen lock: unlocking the database additionally
// requires supplying cryptographic proof to the storage layer.
type AuthenticationScenario int

const (
	// ScenarioScreenLock gates UI access after the inactivity timeout.
	ScenarioScreenLock AuthenticationScenario = iota
	// ScenarioDatabaseLock gates access to the local encrypted store.
	ScenarioDatabaseLock
)

// String implements [fmt.Stringer] for log output.
func (s AuthenticationScenario) String() string {
	if s == ScenarioDatabaseLock {
		return "databaseLock"
	}
	return "screenLock"
}

// LockSession is the mutable process-wide lock state. It is owned by the
// lock gate; everything else reads a copy via the gate's snapshot accessor.
type LockSession struct {
	// LastUnlockedDate is updated exactly once per successful unlock and
	// once on the unauthenticated→authenticated transition (session
	// bootstrap counts as an implicit unlock).
	LastUnlockedDate time.Time

	// DatabaseLocked reports that the local encrypted store is inaccessible
	// without fresh cryptographic proof.
	DatabaseLocked bool

	// Phase is the last observed host application lifecycle phase.
	Phase AppState
}
