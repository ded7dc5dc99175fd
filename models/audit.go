package models

import "time"

// UnlockEvent is one row of the local unlock audit trail. The trail is
// device-local and diagnostic only; it never leaves the device and carries
// no credential material.
type UnlockEvent struct {
	// TraceID correlates the event with client log entries.
	TraceID string

	// Scenario is the challenge's security sensitivity, see
	// [AuthenticationScenario].
	Scenario AuthenticationScenario

	// Outcome is the terminal [VerificationOutcome] of the challenge.
	Outcome VerificationOutcome

	// OccurredAt is the time the outcome was produced.
	OccurredAt time.Time
}
