package device

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableAuthenticator_NeverGrants(t *testing.T) {
	a := NewUnavailableAuthenticator(logger.Nop())

	for _, scenario := range []models.AuthenticationScenario{models.ScenarioScreenLock, models.ScenarioDatabaseLock} {
		result, err := a.Evaluate(context.Background(), scenario, "unlock the app")
		require.NoError(t, err)
		assert.Equal(t, models.OutcomeNeedsAccountPassword, result.Outcome)
		assert.Nil(t, result.Proof)
	}
}

func TestUnavailableAuthenticator_NoEnrollment(t *testing.T) {
	a := NewUnavailableAuthenticator(logger.Nop())

	_, err := a.Enrollment(context.Background())
	assert.ErrorIs(t, err, ErrNoEnrollment)
}
