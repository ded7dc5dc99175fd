package client

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/go-app-lock/internal/adapter"
	"github.com/MKhiriev/go-app-lock/internal/config"
	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/MKhiriev/go-app-lock/internal/tui"
	"github.com/MKhiriev/go-app-lock/internal/workers"
	"github.com/MKhiriev/go-app-lock/models"
)

// lifecycleBuffer bounds how many undelivered lifecycle events the UI may
// queue before new ones are dropped.
const lifecycleBuffer = 16

type App struct {
	services   *service.LockServices
	ui         *tui.TUI
	session    adapter.SessionAdapter
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.LockServices, ui *tui.TUI, session adapter.SessionAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	return &App{
		services:   services,
		ui:         ui,
		session:    session,
		workersCfg: workersCfg,
		logger:     logger,
	}, nil
}

// Run implements [Client]. It establishes a backend session, starts the
// background workers, and blocks in the terminal UI until the user quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	login := getenv("APPLOCK_LOGIN", "demo")
	password := getenv("APPLOCK_PASSWORD", "demo")
	if err := a.session.Login(ctx, login, password); err != nil {
		// Offline start is allowed: custom-passcode unlock works without
		// a backend, and password verification reports a timeout.
		a.logger.Warn().Str("func", "Run").Msgf("backend login failed, starting offline: %v", err)
	}

	events := make(chan models.LifecycleEvent, lifecycleBuffer)

	workers.NewWorkers(
		workers.NewLifecycleWorker(ctx, events, a.services.Presenter, a.logger.GetChildLogger()),
		workers.NewIdleWorker(ctx, a.workersCfg.IdleTick, a.services.Presenter, a.logger.GetChildLogger()),
	).Run()

	if err := a.ui.Run(ctx, a.services.Presenter, a.services.Gate, events); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
