package tui

import (
	"strings"

	"github.com/MKhiriev/go-app-lock/internal/service"
)

// sessionModel renders the unlocked application surface. The demo client
// has no real content behind the lock, so it shows the current session
// snapshot and the keys that drive the lifecycle simulation.
type sessionModel struct {
	gate service.LockGate
}

func (m sessionModel) view() string {
	session := m.gate.Session()

	var b strings.Builder
	b.WriteString("Session\n\n")
	b.WriteString("Phase:         " + session.Phase.String() + "\n")
	if session.LastUnlockedDate.IsZero() {
		b.WriteString("Last unlocked: -\n")
	} else {
		b.WriteString("Last unlocked: " + session.LastUnlockedDate.Format("15:04:05") + "\n")
	}
	if session.DatabaseLocked {
		b.WriteString("Database:      locked\n")
	} else {
		b.WriteString("Database:      open\n")
	}

	return renderPage("GO-APP-LOCK", strings.TrimRight(b.String(), "\n"), "b: background │ L: lock now │ q: quit")
}

// dimmedView is the privacy cover shown while the app is in the
// background.
func dimmedView() string {
	content := "Application is in the background.\n\nf: return to foreground"
	return dimmedStyle.Render(renderPage("GO-APP-LOCK", content, ""))
}
