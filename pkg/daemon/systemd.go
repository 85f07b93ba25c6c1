package daemon

import (
	"context"
	"fmt"
	sddaemon "github.com/coreos/go-systemd/v22/daemon"
	"time"
)

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := sddaemon.SdNotify(false, sddaemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	_, _ = sddaemon.SdNotify(false, "STATUS=Painting borders by keyboard layout")

	t, err := sddaemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			_, _ = sddaemon.SdNotify(false, sddaemon.SdNotifyStopping)
			return nil

		case <-time.After(t / 2):
			_, err := sddaemon.SdNotify(false, sddaemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}
