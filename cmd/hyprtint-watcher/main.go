package main

import (
	"codeberg.org/miketth/hyprtint/pkg/detector"
	"codeberg.org/miketth/hyprtint/pkg/hyprland"
	"codeberg.org/miketth/hyprtint/pkg/protocol"
	"codeberg.org/miketth/hyprtint/pkg/xkblayouts"
	"context"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// The watcher takes no arguments; it is started by hyprtint with its
// standard streams discarded, so everything goes to a log file.
func main() {
	if err := run(); err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	log, err := newLogger(os.Getenv("HYPRTINT_DEBUG") != "")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log = log.With("arch", runtime.GOARCH, "pid", os.Getpid())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rulesPath := os.Getenv("HYPRTINT_EVDEV_XML")
	if rulesPath == "" {
		rulesPath = xkblayouts.DefaultRulesPath
	}
	registry, err := xkblayouts.ParseLayouts(rulesPath)
	if err != nil {
		log.Errorw("parse layouts", "path", rulesPath, "error", err)
		return fmt.Errorf("parse layouts: %w", err)
	}

	client, err := hyprland.Connect()
	if err != nil {
		log.Errorw("connect to hyprland", "error", err)
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	sender, err := protocol.NewSender()
	if err != nil {
		return fmt.Errorf("create sender: %w", err)
	}

	log.Infow("watching layout changes", "socket", sender.Path)

	err = detector.New(client, registry, sender, log).ProcessLines(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("shutting down")
		return nil
	case err != nil:
		log.Errorw("event stream ended", "error", err)
		return err
	}

	return nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	logPath, err := xdg.StateFile("hyprtint/watcher.log")
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}

	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{logPath}
	loggerConfig.ErrorOutputPaths = []string{logPath}
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
