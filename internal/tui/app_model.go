// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/MKhiriev/go-app-lock/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayUnlock
	overlayCreatePasscode
)

// lockAppModel is the TUI router:
// 1) renders the session surface when the app is unlocked
// 2) swaps in the lock or passcode-creation overlay on presenter command
// 3) dims the whole screen while the app is "in the background"
// 4) feeds key-driven lifecycle events into the lock pipeline
type lockAppModel struct {
	ctx       context.Context
	presenter service.LockPresenter
	events    chan<- models.LifecycleEvent

	session sessionModel
	unlock  unlockModel
	create  createPasscodeModel

	overlay overlayKind
	dimmed  bool

	quitByUser bool
}

func newLockAppModel(ctx context.Context, presenter service.LockPresenter, gate service.LockGate, events chan<- models.LifecycleEvent, customPasscode bool) lockAppModel {
	return lockAppModel{
		ctx:       ctx,
		presenter: presenter,
		events:    events,
		session:   sessionModel{gate: gate},
		unlock:    newUnlockModel(ctx, presenter, customPasscode),
		create:    newCreatePasscodeModel(ctx, presenter),
	}
}

func (m lockAppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLifecycle(models.LifecycleEvent{
		Kind:     models.EventStateTransition,
		NewState: models.StateAuthenticated,
	}))
}

func (m lockAppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Presenter-driven UI state first; these are valid in every mode.
	switch state := msg.(type) {
	case showUnlockMsg:
		m.overlay = overlayUnlock
		m.unlock.show(state.message)
		return m, nil
	case showCreatePasscodeMsg:
		m.overlay = overlayCreatePasscode
		m.create.reset()
		return m, nil
	case dismissUnlockMsg:
		m.overlay = overlayNone
		return m, nil
	case spinnerStateMsg:
		m.unlock.verifying = state.on
		if state.on {
			return m, m.unlock.spinner.Tick
		}
		return m, nil
	case reauthStateMsg:
		m.unlock.reauth = state.on
		return m, nil
	case dimmedStateMsg:
		m.dimmed = state.on
		return m, nil
	case spinner.TickMsg:
		if !m.unlock.verifying {
			return m, nil
		}
		var cmd tea.Cmd
		m.unlock.spinner, cmd = m.unlock.spinner.Update(state)
		return m, cmd
	case createResultMsg:
		var cmd tea.Cmd
		m.create, cmd = m.create.update(state)
		return m, cmd
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	// While dimmed only the foreground key is live.
	if m.dimmed {
		if isKey && key.Matches(keyMsg, keys.foreground) {
			return m, m.cmdLifecycle(models.LifecycleEvent{Kind: models.EventDidBecomeActive})
		}
		return m, nil
	}

	switch m.overlay {
	case overlayUnlock:
		var cmd tea.Cmd
		m.unlock, cmd = m.unlock.update(msg)
		return m, cmd
	case overlayCreatePasscode:
		var cmd tea.Cmd
		m.create, cmd = m.create.update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.background):
		return m, m.cmdLifecycle(models.LifecycleEvent{Kind: models.EventWillResignActive})
	case key.Matches(keyMsg, keys.lockNow):
		// Simulate a background round-trip long enough to trip the
		// timeout on platforms where the policy forces the lock.
		return m, tea.Sequence(
			m.cmdLifecycle(models.LifecycleEvent{Kind: models.EventWillResignActive}),
			m.cmdLifecycle(models.LifecycleEvent{Kind: models.EventDidBecomeActive}),
		)
	}

	return m, nil
}

func (m lockAppModel) View() string {
	if m.dimmed {
		return dimmedView()
	}

	switch m.overlay {
	case overlayUnlock:
		return m.unlock.view()
	case overlayCreatePasscode:
		return m.create.view()
	}

	return m.session.view()
}

// cmdLifecycle hands an event to the lifecycle worker without blocking the
// UI loop. Events are dropped if the pipeline is saturated.
func (m lockAppModel) cmdLifecycle(event models.LifecycleEvent) tea.Cmd {
	events := m.events

	return func() tea.Msg {
		select {
		case events <- event:
		default:
		}
		return nil
	}
}
