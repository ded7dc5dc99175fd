package device

//go:generate mockgen -source=interfaces.go -destination=../mock/device_authenticator_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-app-lock/models"
)

// Result is the terminal answer of one device challenge.
type Result struct {
	// Outcome is one of granted, denied or needsAccountPassword.
	Outcome models.VerificationOutcome

	// Proof is the opaque authentication-context token produced by the
	// platform on a granted challenge. It is forwarded to the storage
	// layer when a database unlock requires cryptographic proof. Nil for
	// non-granted outcomes.
	Proof []byte
}

// Authenticator is the platform's biometric/passcode authentication
// capability. Exactly one challenge may be in flight per process; the
// verifier layer enforces the single-flight invariant, implementations only
// need to run one challenge to one completion.
//
// Cancellation of the prompt by the user is reported as a denied outcome,
// not an error: errors are reserved for platform faults.
type Authenticator interface {
	// Evaluate runs one device challenge. reason is the human-readable
	// explanation shown on the platform prompt.
	Evaluate(ctx context.Context, scenario models.AuthenticationScenario, reason string) (Result, error)

	// Enrollment returns the current biometric-enrollment descriptor, an
	// opaque snapshot of which biometric credentials exist on the device.
	// Returns [ErrNoEnrollment] when the device has no biometrics
	// enrolled at all.
	Enrollment(ctx context.Context) (models.EnrollmentDescriptor, error)
}
