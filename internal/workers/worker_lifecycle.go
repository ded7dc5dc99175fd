package workers

import (
	"context"

	"github.com/MKhiriev/go-app-lock/internal/logger"
	"github.com/MKhiriev/go-app-lock/internal/service"
	"github.com/MKhiriev/go-app-lock/models"
)

// lifecycleWorker pumps host-application lifecycle events into the lock
// presenter. It owns the read side of the events channel and stops when
// the channel is closed or the context is cancelled.
type lifecycleWorker struct {
	ctx       context.Context
	events    <-chan models.LifecycleEvent
	presenter service.LockPresenter
	logger    *logger.Logger
}

// NewLifecycleWorker creates a worker that forwards every event from the
// given channel to presenter.OnLifecycleEvent.
func NewLifecycleWorker(ctx context.Context, events <-chan models.LifecycleEvent, presenter service.LockPresenter, logger *logger.Logger) Worker {
	return &lifecycleWorker{
		ctx:       ctx,
		events:    events,
		presenter: presenter,
		logger:    logger,
	}
}

// Run implements [Worker].
func (w *lifecycleWorker) Run() {
	go w.loop()
}

func (w *lifecycleWorker) loop() {
	w.logger.Debug().Str("func", "loop").Msg("lifecycle worker started")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Debug().Str("func", "loop").Msg("lifecycle worker stopped: context cancelled")
			return
		case event, ok := <-w.events:
			if !ok {
				w.logger.Debug().Str("func", "loop").Msg("lifecycle worker stopped: events channel closed")
				return
			}
			w.presenter.OnLifecycleEvent(w.ctx, event)
		}
	}
}
