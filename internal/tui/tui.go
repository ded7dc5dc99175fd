// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the lock demo
// client. It renders the session surface, the lock overlay, and the
// passcode creation overlay, and adapts the running Bubble Tea program to
// the LockUserInterface consumed by the lock presenter.
package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/MKhiriev/go-app-lock/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the Bubble Tea program and implements
// [service.LockUserInterface] by injecting messages into it. Presenter
// calls arriving before Run are dropped; the first EvaluateLock happens
// after the program has started.
type TUI struct {
	cfg    models.LockConfiguration
	logger *logger.Logger

	mu      sync.RWMutex
	program *tea.Program
}

func New(cfg models.LockConfiguration, logger *logger.Logger) *TUI {
	return &TUI{cfg: cfg, logger: logger}
}

// Run starts the terminal program and blocks until the user quits or the
// context is cancelled. Returns [ErrUserQuit] on an explicit quit.
func (t *TUI) Run(ctx context.Context, presenter service.LockPresenter, gate service.LockGate, events chan<- models.LifecycleEvent) error {
	model := newLockAppModel(ctx, presenter, gate, events, t.cfg.UseCustomPasscode)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(lockAppModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// PresentUnlockScreen implements [service.LockUserInterface].
func (t *TUI) PresentUnlockScreen(message string) {
	t.send(showUnlockMsg{message: message})
}

// PresentCreatePasscodeScreen implements [service.LockUserInterface].
func (t *TUI) PresentCreatePasscodeScreen() {
	t.send(showCreatePasscodeMsg{})
}

// DismissUnlockScreen implements [service.LockUserInterface].
func (t *TUI) DismissUnlockScreen() {
	t.send(dismissUnlockMsg{})
}

// SetSpinner implements [service.LockUserInterface].
func (t *TUI) SetSpinner(on bool) {
	t.send(spinnerStateMsg{on: on})
}

// SetReauth implements [service.LockUserInterface].
func (t *TUI) SetReauth(on bool) {
	t.send(reauthStateMsg{on: on})
}

// SetDimmed implements [service.LockUserInterface].
func (t *TUI) SetDimmed(on bool) {
	t.send(dimmedStateMsg{on: on})
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.RLock()
	program := t.program
	t.mu.RUnlock()

	if program == nil {
		t.logger.Debug().Str("func", "send").Msgf("dropped %T: program not running", msg)
		return
	}
	program.Send(msg)
}
