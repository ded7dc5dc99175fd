package models

// AppState describes the high-level lifecycle phase of the hosting
// application as reported by the session layer. The lock core only cares
// about the unauthenticated/authenticated distinction: a freshly
// authenticated session counts as an implicit unlock.
type AppState int

const (
	// StateUnknown is the zero value before the first transition is observed.
	StateUnknown AppState = iota
	// StateUnauthenticated means no user session is established.
	StateUnauthenticated
	// StateAuthenticated means a user session is established and app
	// content may be shown (subject to the lock gate).
	StateAuthenticated
)

// String implements [fmt.Stringer] for log output.
func (s AppState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// LifecycleEventKind enumerates the host application events the lock core
// reacts to.
type LifecycleEventKind int

const (
	// EventStateTransition carries a new [AppState] in
	// [LifecycleEvent.NewState].
	EventStateTransition LifecycleEventKind = iota
	// EventWillResignActive is sent when the application is about to move
	// to the background; contents are dimmed while inactive.
	EventWillResignActive
	// EventDidBecomeActive is sent when the application returns to the
	// foreground; the lock gate is re-evaluated.
	EventDidBecomeActive
)

// LifecycleEvent is an inbound host-application signal. Events carry no
// payload beyond the new state for [EventStateTransition].
type LifecycleEvent struct {
	Kind     LifecycleEventKind
	NewState AppState
}
