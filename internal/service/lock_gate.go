package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/models"
)

type lockGateService struct {
	cfg models.LockConfiguration

	// screenLockEnabled is derived from the policy once at construction:
	// a forced lock is active even with a zero timeout.
	screenLockEnabled bool

	mu      sync.Mutex
	session models.LockSession

	now func() time.Time

	logger *logger.Logger
}

// NewLockGate constructs the [LockGate] for one app-session lifetime. The
// gate starts with a zero last-unlocked date, so the first authenticated
// lock check always demands a challenge.
func NewLockGate(cfg models.LockConfiguration, logger *logger.Logger) LockGate {
	return &lockGateService{
		cfg:               cfg,
		screenLockEnabled: cfg.Forced || cfg.Timeout > 0,
		now:               time.Now,
		logger:            logger,
	}
}

// IsAuthenticationNeeded implements [LockGate]. The elapsed time is computed
// on every call, never cached, so a stale value can not leak a decision.
func (g *lockGateService) IsAuthenticationNeeded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.DatabaseLocked {
		return true
	}
	if !g.screenLockEnabled || g.session.Phase != models.StateAuthenticated {
		return false
	}

	// Only elapsed values in [0, timeout) count as within the window.
	// A negative elapsed means the wall clock moved backward; trusting it
	// would let a user dodge the lock by resetting the clock.
	elapsed := g.now().Sub(g.session.LastUnlockedDate)
	return elapsed < 0 || elapsed >= g.cfg.Timeout
}

// Scenario implements [LockGate].
func (g *lockGateService) Scenario() models.AuthenticationScenario {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.DatabaseLocked {
		return models.ScenarioDatabaseLock
	}
	return models.ScenarioScreenLock
}

// RecordUnlock implements [LockGate].
func (g *lockGateService) RecordUnlock(at time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.session.LastUnlockedDate = at
	g.logger.Debug().Str("func", "RecordUnlock").Msgf("unlock recorded at %s", at.Format(time.RFC3339))
}

// OnAppStateTransition implements [LockGate].
func (g *lockGateService) OnAppStateTransition(to models.AppState) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Session bootstrap counts as an implicit unlock: a freshly
	// authenticated session must not immediately demand re-authentication.
	if g.session.Phase != models.StateAuthenticated && to == models.StateAuthenticated {
		g.session.LastUnlockedDate = g.now()
	}

	g.logger.Debug().Str("func", "OnAppStateTransition").Msgf("app state %s -> %s", g.session.Phase, to)
	g.session.Phase = to
}

// SetDatabaseLocked implements [LockGate].
func (g *lockGateService) SetDatabaseLocked(locked bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.session.DatabaseLocked = locked
}

// Session implements [LockGate].
func (g *lockGateService) Session() models.LockSession {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.session
}
