package detector

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"strings"
)

// Detector turns Hyprland activelayout events into layout change
// notifications for the main process.
type Detector struct {
	listener EventListener
	resolver LayoutResolver
	notifier Notifier
	log      *zap.SugaredLogger
}

func New(listener EventListener, resolver LayoutResolver, notifier Notifier, log *zap.SugaredLogger) *Detector {
	return &Detector{
		listener: listener,
		resolver: resolver,
		notifier: notifier,
		log:      log,
	}
}

func (d *Detector) ProcessLines(ctx context.Context) error {
	for {
		resultCh := make(chan string, 1)
		errCh := make(chan error, 1)
		go func() {
			line, err := d.listener.ReadLine()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- line
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-resultCh:
			d.processLine(line)
		case err := <-errCh:
			return fmt.Errorf("get line: %w", err)
		}
	}
}

func (d *Detector) processLine(line string) {
	evType, evData, found := strings.Cut(line, ">>")
	if !found {
		d.log.Debugw("invalid line", "line", line)
		return
	}

	if evType == "activelayout" {
		d.processLayoutChange(evData)
	}
}

// processLayoutChange handles "KEYBOARD,Display Name". The display name may
// itself contain commas.
func (d *Detector) processLayoutChange(data string) {
	keyboardName, name, found := strings.Cut(data, ",")
	if !found {
		d.log.Debugw("invalid layout change data", "data", data)
		return
	}

	layout, ok := d.resolver.LayoutForName(name)
	if !ok {
		d.log.Warnw("unknown layout", "keyboard", keyboardName, "layout", name)
		return
	}

	if err := d.notifier.Notify(layout); err != nil {
		d.log.Warnw("notify layout change", "layout", layout, "error", err)
		return
	}

	d.log.Debugw("layout changed", "keyboard", keyboardName, "layout", layout)
}
