package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/adapter"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/validators"
	"github.com/MKhiriev/go-app-lock/models"
)

// User-facing copy for the lock screen. The wrong-passcode-offline variant
// exists because an offline device cannot fall back to account-password
// verification, and the user should know retrying the passcode is the only
// option.
const (
	MsgWrongPassword        = "Wrong password. Please try again."
	MsgWrongPasscode        = "Wrong passcode. Please try again."
	MsgWrongPasscodeOffline = "Wrong passcode. You appear to be offline; only the app passcode can unlock."
	MsgVerificationTimeout  = "Verification timed out. Check your connection and try again."
	MsgVerificationFailed   = "Verification failed. Please try again."
	MsgForcedLockNotice     = "Your organisation now requires an app lock. Authenticate to continue."
)

type lockPresenter struct {
	cfg      models.LockConfiguration
	gate     LockGate
	verifier CredentialVerifier
	ui       LockUserInterface
	probe    adapter.HealthProbe
	rules    validators.Validator

	now func() time.Time

	mu          sync.Mutex
	state       models.AuthenticationState
	scenario    models.AuthenticationScenario
	informed    bool
	creating    bool
	unlocked    chan struct{}
	unlockFired bool

	logger *logger.Logger
}

// NewLockPresenter constructs the [LockPresenter]. ui is the host's lock
// surface; rules is the passcode rule set applied during creation.
func NewLockPresenter(cfg models.LockConfiguration, gate LockGate, verifier CredentialVerifier, ui LockUserInterface, probe adapter.HealthProbe, rules validators.Validator, logger *logger.Logger) LockPresenter {
	return &lockPresenter{
		cfg:      cfg,
		gate:     gate,
		verifier: verifier,
		ui:       ui,
		probe:    probe,
		rules:    rules,
		now:      time.Now,
		state:    models.AuthNeeded,
		unlocked: make(chan struct{}),
		logger:   logger,
	}
}

// EvaluateLock implements [LockPresenter].
func (p *lockPresenter) EvaluateLock(ctx context.Context) {
	if !p.gate.IsAuthenticationNeeded() {
		return
	}
	scenario := p.gate.Scenario()

	p.mu.Lock()
	p.scenario = scenario
	switch p.state {
	case models.AuthCancelled:
		// Only an explicit re-arm leaves the cancelled state.
		p.mu.Unlock()
		p.ui.SetReauth(true)
		return
	case models.AuthPendingPassword:
		// A challenge is already on screen awaiting input.
		p.mu.Unlock()
		return
	}

	// Entering a new lock cycle: re-arm the unlocked broadcast.
	if p.unlockFired {
		p.unlocked = make(chan struct{})
		p.unlockFired = false
	}

	message := ""
	if p.cfg.Forced && p.cfg.InformUserOfForcedLock && !p.informed {
		message = MsgForcedLockNotice
		p.informed = true
	}
	p.mu.Unlock()

	p.ui.SetReauth(false)
	p.ui.PresentUnlockScreen(message)

	p.runDeviceChallenge(ctx, scenario)
}

func (p *lockPresenter) runDeviceChallenge(ctx context.Context, scenario models.AuthenticationScenario) {
	p.ui.SetSpinner(true)
	outcome, err := p.verifier.EvaluateDeviceAuthentication(ctx, scenario, challengeReason(scenario))
	p.ui.SetSpinner(false)

	if errors.Is(err, ErrChallengeInFlight) {
		return
	}
	if err != nil {
		p.logger.Warn().Str("func", "runDeviceChallenge").Msgf("device challenge: %v", err)
	}

	p.mu.Lock()
	p.state.Update(outcome)
	state := p.state
	p.mu.Unlock()

	switch {
	case outcome == models.OutcomeGranted:
		p.finishUnlock()
	case state == models.AuthCancelled:
		p.ui.SetReauth(true)
	case state == models.AuthPendingPassword:
		if p.cfg.UseCustomPasscode && !p.verifier.HasCustomPasscode(ctx) {
			// One-time migration path: there is nothing to verify
			// against yet, so a passcode must be created first.
			p.setCreating(true)
			p.ui.PresentCreatePasscodeScreen()
		}
	}
}

// SubmitSecret implements [LockPresenter].
func (p *lockPresenter) SubmitSecret(ctx context.Context, secret string) {
	p.mu.Lock()
	if p.state != models.AuthPendingPassword {
		p.mu.Unlock()
		p.logger.Debug().Str("func", "SubmitSecret").Msgf("ignored in state %s", p.state)
		return
	}
	p.mu.Unlock()

	if secret == "" {
		// Empty input is a cancel; the verifier is never invoked with
		// an empty secret.
		p.mu.Lock()
		p.state = models.AuthCancelled
		p.mu.Unlock()
		p.ui.SetReauth(true)
		return
	}

	p.ui.SetSpinner(true)
	var outcome models.VerificationOutcome
	var err error
	if p.cfg.UseCustomPasscode {
		outcome, err = p.verifier.VerifyCustomPasscode(ctx, secret)
	} else {
		outcome, err = p.verifier.VerifyAccountPassword(ctx, secret)
	}
	p.ui.SetSpinner(false)

	if err != nil {
		p.logger.Warn().Str("func", "SubmitSecret").Msgf("verification failed: %v", err)
		p.ui.PresentUnlockScreen(MsgVerificationFailed)
		return
	}

	switch {
	case outcome.Succeeded():
		p.finishUnlock()
	case outcome == models.OutcomeUnknown && p.cfg.UseCustomPasscode:
		// No passcode was ever set: misconfigured state, not a wrong
		// secret. Route to creation instead of a retry prompt.
		p.setCreating(true)
		p.ui.PresentCreatePasscodeScreen()
	case outcome == models.OutcomeTimeout:
		p.ui.PresentUnlockScreen(MsgVerificationTimeout)
	case outcome == models.OutcomeUnknown:
		p.ui.PresentUnlockScreen(MsgVerificationFailed)
	default:
		p.ui.PresentUnlockScreen(p.wrongSecretMessage(ctx))
	}
}

// SubmitNewPasscode implements [LockPresenter].
func (p *lockPresenter) SubmitNewPasscode(ctx context.Context, passcode string) error {
	p.mu.Lock()
	creating := p.creating
	p.mu.Unlock()
	if !creating {
		return ErrNoPendingPasscode
	}

	if err := p.rules.Validate(ctx, passcode); err != nil {
		return err
	}
	if err := p.verifier.CreateCustomPasscode(ctx, passcode); err != nil {
		return err
	}

	p.setCreating(false)
	p.finishUnlock()
	return nil
}

// RequestReauthentication implements [LockPresenter].
func (p *lockPresenter) RequestReauthentication(ctx context.Context) {
	p.mu.Lock()
	if p.state != models.AuthCancelled {
		p.mu.Unlock()
		return
	}
	p.state = models.AuthNeeded
	p.mu.Unlock()

	p.ui.SetReauth(false)
	p.EvaluateLock(ctx)
}

// OnLifecycleEvent implements [LockPresenter].
func (p *lockPresenter) OnLifecycleEvent(ctx context.Context, event models.LifecycleEvent) {
	switch event.Kind {
	case models.EventWillResignActive:
		p.ui.SetDimmed(true)
	case models.EventDidBecomeActive:
		p.ui.SetDimmed(false)
		p.EvaluateLock(ctx)
	case models.EventStateTransition:
		p.gate.OnAppStateTransition(event.NewState)
		p.EvaluateLock(ctx)
	}
}

// State implements [LockPresenter].
func (p *lockPresenter) State() models.AuthenticationState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Unlocked implements [LockPresenter].
func (p *lockPresenter) Unlocked() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unlocked
}

// finishUnlock runs the unlock sequence in its required order: record the
// unlock, then broadcast the unlocked signal, then dismiss the UI, so any
// observer woken by the broadcast sees a consistent last-unlocked date.
func (p *lockPresenter) finishUnlock() {
	p.gate.RecordUnlock(p.now())

	p.mu.Lock()
	p.state = models.AuthNeeded
	ch := p.unlocked
	fired := p.unlockFired
	p.unlockFired = true
	p.mu.Unlock()

	if !fired {
		close(ch)
	}

	p.ui.DismissUnlockScreen()
}

func (p *lockPresenter) setCreating(creating bool) {
	p.mu.Lock()
	p.creating = creating
	p.mu.Unlock()
}

func (p *lockPresenter) wrongSecretMessage(ctx context.Context) string {
	if !p.cfg.UseCustomPasscode {
		return MsgWrongPassword
	}
	if !p.probe.Online(ctx) {
		return MsgWrongPasscodeOffline
	}
	return MsgWrongPasscode
}

func challengeReason(scenario models.AuthenticationScenario) string {
	if scenario == models.ScenarioDatabaseLock {
		return "Unlock your message database"
	}
	return "Unlock the app"
}
