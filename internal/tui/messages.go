package tui

// Messages injected into the running program by the lock presenter via
// [TUI]. They mirror the LockUserInterface surface one to one.

type showUnlockMsg struct {
	message string
}

type showCreatePasscodeMsg struct{}

type dismissUnlockMsg struct{}

type spinnerStateMsg struct {
	on bool
}

type reauthStateMsg struct {
	on bool
}

type dimmedStateMsg struct {
	on bool
}

// createResultMsg carries the outcome of an async passcode creation.
type createResultMsg struct {
	err error
}
