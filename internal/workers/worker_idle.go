package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/service"
)

// defaultIdleTick bounds how stale the lock decision can get when no
// interval is configured.
const defaultIdleTick = time.Second

// idleWorker periodically re-evaluates the lock while the application is
// running, so the timeout engages even without any lifecycle event.
type idleWorker struct {
	ctx       context.Context
	tick      time.Duration
	presenter service.LockPresenter
	logger    *logger.Logger
}

// NewIdleWorker creates a worker that calls presenter.EvaluateLock every
// tick. A non-positive tick falls back to [defaultIdleTick].
func NewIdleWorker(ctx context.Context, tick time.Duration, presenter service.LockPresenter, logger *logger.Logger) Worker {
	if tick <= 0 {
		tick = defaultIdleTick
	}

	return &idleWorker{
		ctx:       ctx,
		tick:      tick,
		presenter: presenter,
		logger:    logger,
	}
}

// Run implements [Worker].
func (w *idleWorker) Run() {
	go w.loop()
}

func (w *idleWorker) loop() {
	w.logger.Debug().Str("func", "loop").Msgf("idle worker started, tick=%s", w.tick)

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Debug().Str("func", "loop").Msg("idle worker stopped: context cancelled")
			return
		case <-ticker.C:
			w.presenter.EvaluateLock(w.ctx)
		}
	}
}
