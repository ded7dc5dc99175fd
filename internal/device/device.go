// Package device abstracts the platform's local authentication capability
// (biometrics or device passcode). Real deployments plug in a
// platform-specific [Authenticator]; builds without one use
// [NewUnavailableAuthenticator], which routes every challenge to the
// fallback secret.
package device

import (
	"context"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/models"
)

// unavailableAuthenticator is the [Authenticator] for platforms without a
// local authentication capability (headless builds, desktops without
// biometric hardware). Every challenge reports needsAccountPassword so the
// lock flow degrades to the fallback secret instead of silently granting.
type unavailableAuthenticator struct {
	logger *logger.Logger
}

// NewUnavailableAuthenticator constructs the no-biometrics [Authenticator].
func NewUnavailableAuthenticator(logger *logger.Logger) Authenticator {
	return &unavailableAuthenticator{logger: logger}
}

// Evaluate implements [Authenticator]. It never grants: an absent capability
// always degrades to "ask for more credentials".
func (a *unavailableAuthenticator) Evaluate(ctx context.Context, scenario models.AuthenticationScenario, reason string) (Result, error) {
	a.logger.Debug().
		Str("scenario", scenario.String()).
		Msg("device authentication unavailable, falling back to secret")

	return Result{Outcome: models.OutcomeNeedsAccountPassword}, nil
}

// Enrollment implements [Authenticator].
func (a *unavailableAuthenticator) Enrollment(ctx context.Context) (models.EnrollmentDescriptor, error) {
	return nil, ErrNoEnrollment
}
