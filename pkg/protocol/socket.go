package protocol

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"io/fs"
	"net"
	"os"
	"syscall"
	"time"
)

const (
	socketName   = "hyprtint/notify.sock"
	writeTimeout = 250 * time.Millisecond
	readBuffer   = 64
)

var ErrAlreadyRunning = errors.New("another instance owns the notification socket")

// SocketPath is the well-known address of the main process.
func SocketPath() (string, error) {
	path, err := xdg.RuntimeFile(socketName)
	if err != nil {
		return "", fmt.Errorf("resolve runtime file: %w", err)
	}
	return path, nil
}

// Post sends ev to whoever listens on path. A missing or unresponsive
// receiver drops the event without an error.
func Post(path string, ev Event) error {
	data, err := ev.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		if isLost(err) {
			return nil
		}
		return fmt.Errorf("dial notification socket: %w", err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := conn.Write(data); err != nil {
		if isLost(err) {
			return nil
		}
		return fmt.Errorf("write notification socket: %w", err)
	}

	return nil
}

func isLost(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, os.ErrDeadlineExceeded)
}

type Sender struct {
	Path string
}

func NewSender() (*Sender, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, err
	}
	return &Sender{Path: path}, nil
}

func (s *Sender) Notify(layout hyprtint.LayoutID) error {
	ev, err := NewLayoutEvent(layout)
	if err != nil {
		return err
	}
	return Post(s.Path, ev)
}

type Listener struct {
	conn *net.UnixConn
	path string
	log  *zap.SugaredLogger
}

func Listen(path string, log *zap.SugaredLogger) (*Listener, error) {
	if probe, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"}); err == nil {
		_ = probe.Close()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, path)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}

	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}

	if err := os.Chmod(path, 0600); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}

	return &Listener{conn: conn, path: path, log: log.With("socket", path)}, nil
}

func (l *Listener) Path() string {
	return l.path
}

// Next blocks until a layout change event arrives. Datagrams with another
// message code or the wrong size are skipped.
func (l *Listener) Next() (Event, error) {
	buf := make([]byte, readBuffer)
	for {
		n, err := l.conn.Read(buf)
		if err != nil {
			return Event{}, fmt.Errorf("read notification socket: %w", err)
		}

		var ev Event
		if err := ev.UnmarshalBinary(buf[:n]); err != nil {
			l.log.Debugw("dropping datagram", "error", err)
			continue
		}
		if ev.Message != LayoutChanged {
			l.log.Debugw("dropping unknown message", "message", ev.Message)
			continue
		}

		return ev, nil
	}
}

func (l *Listener) Close() error {
	err := l.conn.Close()
	if rmErr := os.Remove(l.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}
