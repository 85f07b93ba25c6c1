package main

import (
	"codeberg.org/miketth/hyprtint/pkg/appconfig"
	"codeberg.org/miketth/hyprtint/pkg/autorun"
	"codeberg.org/miketth/hyprtint/pkg/daemon"
	"codeberg.org/miketth/hyprtint/pkg/hyprland"
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"codeberg.org/miketth/hyprtint/pkg/protocol"
	"codeberg.org/miketth/hyprtint/pkg/settings"
	"codeberg.org/miketth/hyprtint/pkg/settings/file"
	"codeberg.org/miketth/hyprtint/pkg/settings/sqlite"
	"codeberg.org/miketth/hyprtint/pkg/supervisor"
	"codeberg.org/miketth/hyprtint/pkg/tui"
	"codeberg.org/miketth/hyprtint/pkg/xkblayouts"
	"context"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"os/signal"
	"syscall"
)

type options struct {
	configPath   string
	debug        bool
	tui          bool
	evdevXmlPath string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "hyprtint",
		Short:         "Tint Hyprland window borders by keyboard layout",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", appconfig.DefaultConfigPath(), "path to config.toml")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "run the interactive settings UI instead of headless")
	cmd.Flags().StringVar(&opts.evdevXmlPath, "evdev-xml-path", "", "path to evdev.xml (overrides config)")

	return cmd
}

func run(ctx context.Context, opts options) (err error) {
	loaded, err := appconfig.LoadFrom(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := loaded.Config
	if opts.evdevXmlPath != "" {
		cfg.Layouts.EvdevXML = opts.evdevXmlPath
	}
	debug := opts.debug || cfg.Log.Debug

	log, err := newLogger(debug, opts.tui, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	for _, w := range loaded.Warnings {
		log.Warnw("config", "path", opts.configPath, "warning", w)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// watchers inherit our environment
	if debug {
		_ = os.Setenv("HYPRTINT_DEBUG", "1")
	}
	_ = os.Setenv("HYPRTINT_EVDEV_XML", cfg.Layouts.EvdevXML)

	registry, err := xkblayouts.ParseLayouts(cfg.Layouts.EvdevXML)
	if err != nil {
		return fmt.Errorf("parse layouts: %w", err)
	}

	hyprctl, err := hyprland.NewHyprctl()
	if err != nil {
		return fmt.Errorf("connect hyprctl: %w", err)
	}
	if _, err := hyprctl.GetKeyboards(); err != nil {
		return fmt.Errorf("query hyprland: %w", err)
	}
	colorizer := hyprland.NewColorizer(hyprctl)

	store, closeStore, err := openStore(cfg.Settings, log)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer func() { err = multierr.Append(err, closeStore()) }()

	manager := settings.NewManager(store, colorizer, log)
	controller := hyprtint.NewController(manager.Load(), colorizer, log)

	socketPath, err := protocol.SocketPath()
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	listener, err := protocol.Listen(socketPath, log)
	if err != nil {
		if errors.Is(err, protocol.ErrAlreadyRunning) {
			return fmt.Errorf("hyprtint is already running: %w", err)
		}
		return fmt.Errorf("listen: %w", err)
	}

	sup := supervisor.New(cfg.Detectors.Primary, cfg.Detectors.Secondary, supervisor.ExecLauncher{}, log)

	var frontend daemon.Frontend
	if opts.tui {
		entry, err := autorun.New()
		if err != nil {
			return fmt.Errorf("locate autostart entry: %w", err)
		}
		layouts := tui.InstalledLayouts{Keyboards: hyprctl, Names: registry}
		frontend = tui.NewFrontend(tui.NewModel(controller, colorizer, manager, layouts, entry))
	} else {
		frontend = daemon.NewHeadless(controller)
	}

	log.Debugw("listening for layout changes", "socket", listener.Path(), "tui", opts.tui)

	return daemon.New(sup, listener, frontend, !opts.tui, log).Run(ctx)
}

func openStore(cfg appconfig.SettingsConfig, log *zap.SugaredLogger) (settings.BlobStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case appconfig.BackendSQLite:
		path := cfg.Path
		if path == "" {
			var err error
			path, err = sqlite.DefaultPath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve settings db path: %w", err)
			}
		}
		store, err := sqlite.NewStore(path, log)
		if err != nil {
			return nil, nil, fmt.Errorf("create sqlite store: %w", err)
		}
		return store, store.Close, nil

	default:
		path := cfg.Path
		if path == "" {
			var err error
			path, err = file.DefaultPath()
			if err != nil {
				return nil, nil, fmt.Errorf("resolve settings file path: %w", err)
			}
		}
		return file.NewStore(path), noop, nil
	}
}

// newLogger writes to stdout when headless. The UI owns the terminal, so
// with --tui logs go to a file instead.
func newLogger(debug, toFile bool, path string) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	if toFile || path != "" {
		if path == "" {
			var err error
			path, err = xdg.StateFile("hyprtint/hyprtint.log")
			if err != nil {
				return nil, fmt.Errorf("resolve log file: %w", err)
			}
		}
		loggerConfig.OutputPaths = []string{path}
		loggerConfig.ErrorOutputPaths = []string{path}
	}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
