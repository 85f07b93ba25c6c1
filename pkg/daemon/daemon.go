package daemon

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"codeberg.org/miketth/hyprtint/pkg/protocol"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"sync"
)

type Supervisor interface {
	StartAll() (bool, error)
	ShutdownAll() error
}

type EventSource interface {
	Next() (protocol.Event, error)
	Close() error
}

// Frontend consumes layout changes until ctx is done. Returning nil means
// the user asked to quit.
type Frontend interface {
	Run(ctx context.Context, events <-chan hyprtint.LayoutID) error
}

type Daemon struct {
	supervisor Supervisor
	events     EventSource
	frontend   Frontend
	systemd    bool
	log        *zap.SugaredLogger
}

func New(supervisor Supervisor, events EventSource, frontend Frontend, systemd bool, log *zap.SugaredLogger) *Daemon {
	return &Daemon{
		supervisor: supervisor,
		events:     events,
		frontend:   frontend,
		systemd:    systemd,
		log:        log,
	}
}

// Run starts the detectors and serves layout changes until ctx is cancelled
// or the frontend quits. The event source is closed and all detectors are
// stopped before Run returns. A failing primary detector aborts before the
// frontend is started.
func (d *Daemon) Run(ctx context.Context) error {
	var closeOnce sync.Once
	closeEvents := func() {
		closeOnce.Do(func() {
			if err := d.events.Close(); err != nil {
				d.log.Debugw("close event source", "error", err)
			}
		})
	}
	defer closeEvents()

	both, err := d.supervisor.StartAll()
	if err != nil {
		return fmt.Errorf("start detectors: %w", err)
	}
	defer func() {
		if shutdownErr := d.supervisor.ShutdownAll(); shutdownErr != nil {
			d.log.Warnw("stop detectors", "error", shutdownErr)
		}
	}()
	if !both {
		d.log.Info("running with the primary detector only")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan hyprtint.LayoutID, 16)
	errChan := make(chan error, 3)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := d.receive(ctx, events); err != nil {
			errChan <- fmt.Errorf("receive events: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := d.frontend.Run(ctx, events); err != nil {
			errChan <- fmt.Errorf("frontend: %w", err)
			return
		}
		cancel()
	}()

	if d.systemd {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := systemdNotifyLoop(ctx); err != nil {
				errChan <- fmt.Errorf("systemd notify: %w", err)
			}
		}()
	}

	d.log.Info("started hyprtint")

	select {
	case err = <-errChan:
	case <-ctx.Done():
		err = ctx.Err()
	}

	cancel()
	closeEvents()
	wg.Wait()

	if errors.Is(err, context.Canceled) {
		d.log.Info("shutting down")
		return nil
	}
	return err
}

func (d *Daemon) receive(ctx context.Context, events chan<- hyprtint.LayoutID) error {
	for {
		ev, err := d.events.Next()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		select {
		case events <- ev.Layout():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
