// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// createPasscodeModel is the Bubble Tea model for the one-time passcode
// creation overlay. It renders two masked inputs (passcode and
// confirmation) and dispatches an async creation command on submission.
// Rule violations returned by the presenter are rendered verbatim, one
// per line.
type createPasscodeModel struct {
	ctx       context.Context
	presenter service.LockPresenter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newCreatePasscodeModel(ctx context.Context, presenter service.LockPresenter) createPasscodeModel {
	passcodeInput := textinput.New()
	passcodeInput.Placeholder = "new passcode"
	passcodeInput.CharLimit = 256
	passcodeInput.Width = 40
	passcodeInput.EchoMode = textinput.EchoPassword
	passcodeInput.EchoCharacter = '*'
	passcodeInput.Focus()

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat passcode"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return createPasscodeModel{
		ctx:       ctx,
		presenter: presenter,
		inputs:    []textinput.Model{passcodeInput, repeatInput},
	}
}

// reset clears both inputs for a fresh creation flow.
func (m *createPasscodeModel) reset() {
	m.errMsg = ""
	m.submitting = false
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
}

func (m createPasscodeModel) update(msg tea.Msg) (createPasscodeModel, tea.Cmd) {
	if result, ok := msg.(createResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.tab):
		m.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}

		passcode := m.inputs[0].Value()
		repeat := m.inputs[1].Value()
		if passcode != repeat {
			m.errMsg = "Passcodes do not match"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdCreate(passcode)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m createPasscodeModel) view() string {
	var b strings.Builder
	b.WriteString("Choose an app passcode. It unlocks the app when the\n")
	b.WriteString("device prompt is unavailable.\n\n")
	b.WriteString("Passcode: [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat:   [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error:"))
		b.WriteString("\n")
		for _, line := range strings.Split(m.errMsg, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return renderPage("CREATE PASSCODE", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: save")
}

func (m createPasscodeModel) cmdCreate(passcode string) tea.Cmd {
	ctx := m.ctx
	presenter := m.presenter

	return func() tea.Msg {
		return createResultMsg{err: presenter.SubmitNewPasscode(ctx, passcode)}
	}
}

func (m *createPasscodeModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *createPasscodeModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
