package daemon

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"codeberg.org/miketth/hyprtint/pkg/protocol"
	"codeberg.org/miketth/hyprtint/pkg/supervisor"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSupervisor struct {
	startErr  error
	both      bool
	started   int
	shutdowns int
}

func (s *fakeSupervisor) StartAll() (bool, error) {
	s.started++
	if s.startErr != nil {
		return false, s.startErr
	}
	return s.both, nil
}

func (s *fakeSupervisor) ShutdownAll() error {
	s.shutdowns++
	return nil
}

type syncColorizer struct {
	mu      sync.Mutex
	applied []hyprtint.ColorParameters
}

func (c *syncColorizer) Current() (hyprtint.ColorParameters, error) {
	return hyprtint.ColorParameters{}, nil
}

func (c *syncColorizer) Apply(params hyprtint.ColorParameters) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applied = append(c.applied, params)
	return nil
}

func (c *syncColorizer) snapshot() []hyprtint.ColorParameters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]hyprtint.ColorParameters(nil), c.applied...)
}

type recordingFrontend struct {
	ran bool
}

func (f *recordingFrontend) Run(ctx context.Context, events <-chan hyprtint.LayoutID) error {
	f.ran = true
	return nil
}

type closedSource struct {
	closed int
}

func (s *closedSource) Next() (protocol.Event, error) {
	return protocol.Event{}, errors.New("closed")
}

func (s *closedSource) Close() error {
	s.closed++
	return nil
}

type blockingSource struct {
	once   sync.Once
	closed chan struct{}
}

func newBlockingSource() *blockingSource {
	return &blockingSource{closed: make(chan struct{})}
}

func (s *blockingSource) Next() (protocol.Event, error) {
	<-s.closed
	return protocol.Event{}, errors.New("closed")
}

func (s *blockingSource) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

var cfg = hyprtint.Configuration{
	DefaultLayout:     "ENU",
	DefaultScheme:     hyprtint.ColorParameters{Color: 0xff0000ff},
	AlternativeScheme: hyprtint.ColorParameters{Color: 0xffff0000},
}

func TestRunPrimaryFailureIsFatal(t *testing.T) {
	sup := &fakeSupervisor{startErr: fmt.Errorf("%w: x64/hyprtint-watcher: no such file", supervisor.ErrPrimaryFailed)}
	frontend := &recordingFrontend{}
	source := &closedSource{}

	err := New(sup, source, frontend, false, zaptest.NewLogger(t).Sugar()).Run(context.Background())
	if !errors.Is(err, supervisor.ErrPrimaryFailed) {
		t.Fatalf("Run error = %v, want ErrPrimaryFailed", err)
	}
	if frontend.ran {
		t.Fatal("frontend started despite fatal detector failure")
	}
	if source.closed != 1 {
		t.Fatalf("event source closed %d times, want 1", source.closed)
	}
}

func TestRunFrontendQuit(t *testing.T) {
	sup := &fakeSupervisor{both: false}
	frontend := &recordingFrontend{}
	source := newBlockingSource()
	core, logs := observer.New(zapcore.InfoLevel)

	if err := New(sup, source, frontend, false, zap.New(core).Sugar()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n := logs.FilterMessage("started hyprtint").Len(); n != 1 {
		t.Fatalf("logged startup %d times, want 1", n)
	}
	if !frontend.ran {
		t.Fatal("frontend did not run in degraded mode")
	}
	if sup.shutdowns != 1 {
		t.Fatalf("ShutdownAll called %d times, want 1", sup.shutdowns)
	}
}

func TestRunDeliversEventsToController(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.sock")
	log := zaptest.NewLogger(t).Sugar()
	listener, err := protocol.Listen(path, log)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	colorizer := &syncColorizer{}
	controller := hyprtint.NewController(cfg, colorizer, log)
	sup := &fakeSupervisor{both: true}
	d := New(sup, listener, NewHeadless(controller), false, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	sender := &protocol.Sender{Path: path}
	for _, layout := range []hyprtint.LayoutID{"ENU", "RUS"} {
		if err := sender.Notify(layout); err != nil {
			t.Fatalf("Notify: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for len(colorizer.snapshot()) < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	applied := colorizer.snapshot()
	if len(applied) != 2 || applied[0] != cfg.DefaultScheme || applied[1] != cfg.AlternativeScheme {
		t.Fatalf("applied %+v, want default then alternative scheme", applied)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if sup.shutdowns != 1 {
		t.Fatalf("ShutdownAll called %d times, want 1", sup.shutdowns)
	}
}

func TestRunReceiveError(t *testing.T) {
	sup := &fakeSupervisor{both: true}
	controller := hyprtint.NewController(cfg, &syncColorizer{}, zaptest.NewLogger(t).Sugar())

	err := New(sup, &closedSource{}, NewHeadless(controller), false, zaptest.NewLogger(t).Sugar()).Run(context.Background())
	if err == nil {
		t.Fatal("expected receive error")
	}
	if sup.shutdowns != 1 {
		t.Fatalf("ShutdownAll called %d times, want 1", sup.shutdowns)
	}
}
