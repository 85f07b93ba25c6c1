package supervisor

import (
	"errors"
	"fmt"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"os"
	"sync"
	"time"
)

type Arch int

const (
	Primary Arch = iota
	Secondary
)

func (a Arch) String() string {
	switch a {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	return fmt.Sprintf("arch(%d)", int(a))
}

var ErrPrimaryFailed = errors.New("primary detector failed to start")

const exitTimeout = 2 * time.Second

type Process interface {
	Pid() int
	Kill() error
	Wait() error
}

type Launcher interface {
	Launch(path string) (Process, error)
}

type Handle struct {
	Arch Arch
	Path string

	proc   Process
	live   *atomic.Bool
	exited chan struct{}
}

func newHandle(arch Arch, path string, proc Process) *Handle {
	h := &Handle{
		Arch:   arch,
		Path:   path,
		proc:   proc,
		live:   atomic.NewBool(true),
		exited: make(chan struct{}),
	}
	go func() {
		_ = proc.Wait()
		h.live.Store(false)
		close(h.exited)
	}()
	return h
}

func (h *Handle) Pid() int {
	return h.proc.Pid()
}

func (h *Handle) Live() bool {
	return h.live.Load()
}

// Exited is closed once the process has been reaped.
func (h *Handle) Exited() <-chan struct{} {
	return h.exited
}

type Supervisor struct {
	primary   string
	secondary string
	launcher  Launcher
	log       *zap.SugaredLogger

	handles      []*Handle
	shutdownOnce sync.Once
}

func New(primary, secondary string, launcher Launcher, log *zap.SugaredLogger) *Supervisor {
	return &Supervisor{
		primary:   primary,
		secondary: secondary,
		launcher:  launcher,
		log:       log,
	}
}

// StartAll launches both detectors. Only the primary one is required; the
// returned flag reports whether every configured detector is running. An
// empty secondary path means no secondary detector is wanted.
func (s *Supervisor) StartAll() (bool, error) {
	proc, err := s.launcher.Launch(s.primary)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrPrimaryFailed, s.primary, err)
	}
	s.track(Primary, s.primary, proc)

	if s.secondary == "" {
		return true, nil
	}

	proc, err = s.launcher.Launch(s.secondary)
	if err != nil {
		s.log.Warnw("secondary detector unavailable, continuing without it", "path", s.secondary, "error", err)
		return false, nil
	}
	s.track(Secondary, s.secondary, proc)

	return true, nil
}

func (s *Supervisor) track(arch Arch, path string, proc Process) {
	h := newHandle(arch, path, proc)
	s.handles = append(s.handles, h)
	s.log.Infow("started detector", "arch", arch, "path", path, "pid", proc.Pid())
}

func (s *Supervisor) Handles() []*Handle {
	return append([]*Handle(nil), s.handles...)
}

// ShutdownAll kills every detector that is still running and waits for it
// to be reaped. Only the first call does anything.
func (s *Supervisor) ShutdownAll() error {
	var err error
	s.shutdownOnce.Do(func() {
		for _, h := range s.handles {
			err = multierr.Append(err, s.stop(h))
		}
	})
	return err
}

func (s *Supervisor) stop(h *Handle) error {
	if !h.Live() {
		return nil
	}

	if err := h.proc.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.log.Warnw("kill detector", "arch", h.Arch, "pid", h.Pid(), "error", err)
		return fmt.Errorf("kill %s detector: %w", h.Arch, err)
	}

	select {
	case <-h.exited:
		s.log.Infow("stopped detector", "arch", h.Arch, "pid", h.Pid())
	case <-time.After(exitTimeout):
		s.log.Warnw("detector did not exit after kill", "arch", h.Arch, "pid", h.Pid())
	}

	return nil
}
