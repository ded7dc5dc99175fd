// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// unlockModel is the Bubble Tea model for the lock overlay. It renders a
// single masked secret input and forwards the submitted secret to the lock
// presenter. While a verification is in flight a spinner replaces the
// submit hint. In reauthentication mode the input is hidden and a single
// enter re-arms the cancelled challenge.
type unlockModel struct {
	ctx       context.Context
	presenter service.LockPresenter

	input     textinput.Model
	spinner   spinner.Model
	message   string
	verifying bool
	reauth    bool

	// customPasscode switches the field label between the app passcode
	// and the account password.
	customPasscode bool
}

func newUnlockModel(ctx context.Context, presenter service.LockPresenter, customPasscode bool) unlockModel {
	secretInput := textinput.New()
	secretInput.Placeholder = "secret"
	secretInput.CharLimit = 256
	secretInput.Width = 40
	secretInput.EchoMode = textinput.EchoPassword
	secretInput.EchoCharacter = '*'
	secretInput.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return unlockModel{
		ctx:            ctx,
		presenter:      presenter,
		input:          secretInput,
		spinner:        s,
		customPasscode: customPasscode,
	}
}

// show resets the overlay for a fresh challenge, keeping the presenter's
// status copy on screen.
func (m *unlockModel) show(message string) {
	m.message = message
	m.input.Reset()
	m.input.Focus()
}

func (m unlockModel) update(msg tea.Msg) (unlockModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.reauth {
		if key.Matches(keyMsg, keys.enter) {
			return m, m.cmdReauthenticate()
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.enter) {
		if m.verifying {
			return m, nil
		}

		secret := m.input.Value()
		m.input.Reset()
		// An empty secret is a deliberate cancel and is submitted as-is.
		return m, m.cmdSubmit(secret)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) view() string {
	if m.reauth {
		box := overlayBoxStyle.Render("Authentication was cancelled.\n\nenter: try again")
		return renderPage("LOCKED", box, "")
	}

	label := "Account password"
	if m.customPasscode {
		label = "App passcode"
	}

	var b strings.Builder
	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n\n")
	}
	b.WriteString(label)
	b.WriteString(": [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.verifying {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Verifying...\n")
	}

	return renderPage("LOCKED", strings.TrimRight(b.String(), "\n"), "enter: submit │ empty enter: cancel")
}

func (m unlockModel) cmdSubmit(secret string) tea.Cmd {
	ctx := m.ctx
	presenter := m.presenter

	return func() tea.Msg {
		// The presenter pushes the follow-up UI state itself.
		presenter.SubmitSecret(ctx, secret)
		return nil
	}
}

func (m unlockModel) cmdReauthenticate() tea.Cmd {
	ctx := m.ctx
	presenter := m.presenter

	return func() tea.Msg {
		presenter.RequestReauthentication(ctx)
		return nil
	}
}
