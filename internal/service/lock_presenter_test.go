// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/mock"
	"github.com/MKhiriev/go-app-lock/internal/validators"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type presenterMocks struct {
	verifier *mock.MockCredentialVerifier
	ui       *mock.MockLockUserInterface
	probe    *mock.MockHealthProbe
}

func newTestPresenter(t *testing.T, ctrl *gomock.Controller, cfg models.LockConfiguration, gate LockGate) (*lockPresenter, presenterMocks) {
	t.Helper()
	m := presenterMocks{
		verifier: mock.NewMockCredentialVerifier(ctrl),
		ui:       mock.NewMockLockUserInterface(ctrl),
		probe:    mock.NewMockHealthProbe(ctrl),
	}

	p := NewLockPresenter(cfg, gate, m.verifier, m.ui, m.probe, validators.NewPasscodeValidator(), logger.Nop()).(*lockPresenter)
	return p, m
}

// lockedGate returns a real gate whose timeout has long expired.
func lockedGate(t *testing.T, cfg models.LockConfiguration) *lockGateService {
	t.Helper()
	g := NewLockGate(cfg, logger.Nop()).(*lockGateService)
	g.session.Phase = models.StateAuthenticated
	g.session.LastUnlockedDate = time.Now().Add(-2 * cfg.Timeout)
	return g
}

// driveToPendingPassword runs one device challenge that demands a fallback
// secret.
func driveToPendingPassword(t *testing.T, ctx context.Context, p *lockPresenter, m presenterMocks) {
	t.Helper()
	m.ui.EXPECT().SetReauth(false)
	m.ui.EXPECT().PresentUnlockScreen("")
	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeNeedsAccountPassword, nil)
	m.ui.EXPECT().SetSpinner(false)
	if p.cfg.UseCustomPasscode {
		m.verifier.EXPECT().HasCustomPasscode(gomock.Any()).Return(true)
	}

	p.EvaluateLock(ctx)
	require.Equal(t, models.AuthPendingPassword, p.State())
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// ── EvaluateLock ─────────────────────────────────────────────────────────────

func TestPresenter_NoChallengeWhenGateSaysNo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := NewLockGate(models.LockConfiguration{Timeout: time.Minute}, logger.Nop())
	p, _ := newTestPresenter(t, ctrl, models.LockConfiguration{Timeout: time.Minute}, gate)

	// unauthenticated phase: no UI or verifier call may happen
	p.EvaluateLock(context.Background())
	assert.Equal(t, models.AuthNeeded, p.State())
}

func TestPresenter_DeviceGranted_UnlockOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mock.NewMockLockGate(ctrl)
	p, m := newTestPresenter(t, ctrl, models.LockConfiguration{Timeout: time.Minute}, gate)
	ctx := context.Background()

	unlockedCh := p.Unlocked()

	gate.EXPECT().IsAuthenticationNeeded().Return(true)
	gate.EXPECT().Scenario().Return(models.ScenarioScreenLock)
	m.ui.EXPECT().SetReauth(false)
	m.ui.EXPECT().PresentUnlockScreen("")
	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(ctx, models.ScenarioScreenLock, "Unlock the app").
		Return(models.OutcomeGranted, nil)
	m.ui.EXPECT().SetSpinner(false)

	// record-unlock happens before the broadcast, the broadcast before
	// the dismissal
	gomock.InOrder(
		gate.EXPECT().RecordUnlock(gomock.Any()).Do(func(at time.Time) {
			assert.False(t, isClosed(unlockedCh), "unlocked signal must not fire before the unlock is recorded")
			assert.False(t, at.IsZero())
		}),
		m.ui.EXPECT().DismissUnlockScreen().Do(func() {
			assert.True(t, isClosed(unlockedCh), "unlocked signal must fire before the UI is dismissed")
		}),
	)

	p.EvaluateLock(ctx)

	assert.True(t, isClosed(unlockedCh))
	assert.Equal(t, models.AuthNeeded, p.State())
}

func TestPresenter_DeviceDenied_OnlyReauthLeavesCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute}
	gate := lockedGate(t, cfg)
	p, m := newTestPresenter(t, ctrl, cfg, gate)
	ctx := context.Background()

	m.ui.EXPECT().SetReauth(gomock.Any()).AnyTimes()
	m.ui.EXPECT().SetSpinner(gomock.Any()).AnyTimes()
	m.ui.EXPECT().PresentUnlockScreen(gomock.Any()).AnyTimes()
	m.ui.EXPECT().DismissUnlockScreen().AnyTimes()

	// exactly one challenge for the first evaluation
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeDenied, nil)

	p.EvaluateLock(ctx)
	require.Equal(t, models.AuthCancelled, p.State())

	// further gate evaluations must not start a new challenge
	p.EvaluateLock(ctx)
	require.Equal(t, models.AuthCancelled, p.State())

	// the explicit re-arm runs a fresh challenge
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeGranted, nil)

	p.RequestReauthentication(ctx)
	assert.Equal(t, models.AuthNeeded, p.State())
	assert.True(t, isClosed(p.Unlocked()))
}

// ── SubmitSecret ─────────────────────────────────────────────────────────────

func TestPresenter_EmptySecretNeverReachesVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)

	// no Verify* expectation is registered: any call would fail the test
	m.ui.EXPECT().SetReauth(true)

	p.SubmitSecret(ctx, "")
	assert.Equal(t, models.AuthCancelled, p.State())
}

func TestPresenter_ValidatedPasscodeUnlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	gate := lockedGate(t, cfg)
	p, m := newTestPresenter(t, ctrl, cfg, gate)
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)
	unlockedCh := p.Unlocked()
	before := time.Now()

	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().VerifyCustomPasscode(ctx, "Passw0rd!").Return(models.OutcomeValidated, nil)
	m.ui.EXPECT().SetSpinner(false)
	m.ui.EXPECT().DismissUnlockScreen()

	p.SubmitSecret(ctx, "Passw0rd!")

	assert.True(t, isClosed(unlockedCh), "unlocked signal must be emitted")
	assert.False(t, gate.IsAuthenticationNeeded())
	assert.False(t, gate.Session().LastUnlockedDate.Before(before),
		"last-unlocked date must be at least the time the outcome was produced")
}

func TestPresenter_WrongPasscodeKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)
	unlockedCh := p.Unlocked()

	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().VerifyCustomPasscode(ctx, "0000").Return(models.OutcomeDenied, nil)
	m.ui.EXPECT().SetSpinner(false)
	m.probe.EXPECT().Online(ctx).Return(true)
	m.ui.EXPECT().PresentUnlockScreen(MsgWrongPasscode)

	p.SubmitSecret(ctx, "0000")

	assert.Equal(t, models.AuthPendingPassword, p.State())
	assert.False(t, isClosed(unlockedCh), "no unlock signal on a denied secret")
}

func TestPresenter_WrongPasscodeOfflineCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)

	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().VerifyCustomPasscode(ctx, "0000").Return(models.OutcomeDenied, nil)
	m.ui.EXPECT().SetSpinner(false)
	m.probe.EXPECT().Online(ctx).Return(false)
	m.ui.EXPECT().PresentUnlockScreen(MsgWrongPasscodeOffline)

	p.SubmitSecret(ctx, "0000")
	assert.Equal(t, models.AuthPendingPassword, p.State())
}

func TestPresenter_WrongAccountPasswordCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)

	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().VerifyAccountPassword(ctx, "nope").Return(models.OutcomeDenied, nil)
	m.ui.EXPECT().SetSpinner(false)
	m.ui.EXPECT().PresentUnlockScreen(MsgWrongPassword)

	p.SubmitSecret(ctx, "nope")
	assert.Equal(t, models.AuthPendingPassword, p.State())
}

func TestPresenter_AccountPasswordTimeoutIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)

	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().VerifyAccountPassword(ctx, "secret").Return(models.OutcomeTimeout, nil)
	m.ui.EXPECT().SetSpinner(false)
	m.ui.EXPECT().PresentUnlockScreen(MsgVerificationTimeout)

	p.SubmitSecret(ctx, "secret")

	// no automatic retry; the user resubmits explicitly
	assert.Equal(t, models.AuthPendingPassword, p.State())
}

func TestPresenter_SecretIgnoredOutsidePendingPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute}
	p, _ := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))

	// state is needed: the submission is dropped without any call
	p.SubmitSecret(context.Background(), "secret")
	assert.Equal(t, models.AuthNeeded, p.State())
}

// ── Passcode creation ────────────────────────────────────────────────────────

func TestPresenter_UnknownPasscodeRoutesToCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	driveToPendingPassword(t, ctx, p, m)

	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().VerifyCustomPasscode(ctx, "Passw0rd!").Return(models.OutcomeUnknown, nil)
	m.ui.EXPECT().SetSpinner(false)
	// creation screen, not a wrong-passcode message
	m.ui.EXPECT().PresentCreatePasscodeScreen()

	p.SubmitSecret(ctx, "Passw0rd!")
	assert.Equal(t, models.AuthPendingPassword, p.State())
}

func TestPresenter_NoStoredPasscodeShowsCreationAfterChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	p, m := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))
	ctx := context.Background()

	m.ui.EXPECT().SetReauth(false)
	m.ui.EXPECT().PresentUnlockScreen("")
	m.ui.EXPECT().SetSpinner(true)
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeNeedsAccountPassword, nil)
	m.ui.EXPECT().SetSpinner(false)
	m.verifier.EXPECT().HasCustomPasscode(gomock.Any()).Return(false)
	m.ui.EXPECT().PresentCreatePasscodeScreen()

	p.EvaluateLock(ctx)
	require.Equal(t, models.AuthPendingPassword, p.State())

	// a rule violation is returned for rendering; nothing is stored
	err := p.SubmitNewPasscode(ctx, "weak")
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrPasscodeTooShort)

	// a conforming passcode completes the flow and unlocks
	unlockedCh := p.Unlocked()
	m.verifier.EXPECT().CreateCustomPasscode(ctx, "Passw0rd!").Return(nil)
	m.ui.EXPECT().DismissUnlockScreen()

	require.NoError(t, p.SubmitNewPasscode(ctx, "Passw0rd!"))
	assert.True(t, isClosed(unlockedCh))
}

func TestPresenter_SubmitNewPasscodeWithoutPendingFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, UseCustomPasscode: true}
	p, _ := newTestPresenter(t, ctrl, cfg, lockedGate(t, cfg))

	err := p.SubmitNewPasscode(context.Background(), "Passw0rd!")
	require.ErrorIs(t, err, ErrNoPendingPasscode)
}

// ── Forced-lock notice / lifecycle / re-arm ──────────────────────────────────

func TestPresenter_ForcedLockNoticeShownOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := models.LockConfiguration{Timeout: time.Minute, Forced: true, InformUserOfForcedLock: true}
	gate := mock.NewMockLockGate(ctrl)
	p, m := newTestPresenter(t, ctrl, cfg, gate)
	ctx := context.Background()

	gate.EXPECT().IsAuthenticationNeeded().Return(true).Times(2)
	gate.EXPECT().Scenario().Return(models.ScenarioScreenLock).Times(2)
	gate.EXPECT().RecordUnlock(gomock.Any()).Times(2)
	m.ui.EXPECT().SetReauth(false).Times(2)
	m.ui.EXPECT().SetSpinner(gomock.Any()).AnyTimes()
	m.ui.EXPECT().DismissUnlockScreen().Times(2)
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeGranted, nil).
		Times(2)

	gomock.InOrder(
		m.ui.EXPECT().PresentUnlockScreen(MsgForcedLockNotice),
		m.ui.EXPECT().PresentUnlockScreen(""),
	)

	p.EvaluateLock(ctx)
	p.EvaluateLock(ctx)
}

func TestPresenter_LifecycleEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mock.NewMockLockGate(ctrl)
	p, m := newTestPresenter(t, ctrl, models.LockConfiguration{Timeout: time.Minute}, gate)
	ctx := context.Background()

	m.ui.EXPECT().SetDimmed(true)
	p.OnLifecycleEvent(ctx, models.LifecycleEvent{Kind: models.EventWillResignActive})

	m.ui.EXPECT().SetDimmed(false)
	gate.EXPECT().IsAuthenticationNeeded().Return(false)
	p.OnLifecycleEvent(ctx, models.LifecycleEvent{Kind: models.EventDidBecomeActive})

	gate.EXPECT().OnAppStateTransition(models.StateAuthenticated)
	gate.EXPECT().IsAuthenticationNeeded().Return(false)
	p.OnLifecycleEvent(ctx, models.LifecycleEvent{
		Kind:     models.EventStateTransition,
		NewState: models.StateAuthenticated,
	})
}

func TestPresenter_UnlockedChannelRearmedPerLockCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mock.NewMockLockGate(ctrl)
	p, m := newTestPresenter(t, ctrl, models.LockConfiguration{Timeout: time.Minute}, gate)
	ctx := context.Background()

	gate.EXPECT().IsAuthenticationNeeded().Return(true).AnyTimes()
	gate.EXPECT().Scenario().Return(models.ScenarioScreenLock).AnyTimes()
	gate.EXPECT().RecordUnlock(gomock.Any()).AnyTimes()
	m.ui.EXPECT().SetReauth(gomock.Any()).AnyTimes()
	m.ui.EXPECT().SetSpinner(gomock.Any()).AnyTimes()
	m.ui.EXPECT().PresentUnlockScreen(gomock.Any()).AnyTimes()
	m.ui.EXPECT().DismissUnlockScreen().AnyTimes()

	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeGranted, nil)

	first := p.Unlocked()
	p.EvaluateLock(ctx)
	require.True(t, isClosed(first))

	// next lock cycle gets a fresh, open channel
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.OutcomeDenied, nil)

	p.EvaluateLock(ctx)
	second := p.Unlocked()
	assert.False(t, isClosed(second))
}

func TestPresenter_DatabaseScenarioReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gate := mock.NewMockLockGate(ctrl)
	p, m := newTestPresenter(t, ctrl, models.LockConfiguration{Timeout: time.Minute}, gate)
	ctx := context.Background()

	gate.EXPECT().IsAuthenticationNeeded().Return(true)
	gate.EXPECT().Scenario().Return(models.ScenarioDatabaseLock)
	gate.EXPECT().RecordUnlock(gomock.Any())
	m.ui.EXPECT().SetReauth(false)
	m.ui.EXPECT().PresentUnlockScreen("")
	m.ui.EXPECT().SetSpinner(gomock.Any()).AnyTimes()
	m.ui.EXPECT().DismissUnlockScreen()

	// the dominant database scenario reaches the verifier verbatim
	m.verifier.EXPECT().
		EvaluateDeviceAuthentication(ctx, models.ScenarioDatabaseLock, "Unlock your message database").
		Return(models.OutcomeGranted, nil)

	p.EvaluateLock(ctx)
}
