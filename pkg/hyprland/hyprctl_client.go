package hyprland

import (
	"encoding/json"
	"fmt"
	"github.com/tidwall/gjson"
	"io"
	"net"
	"strings"
	"time"
)

// DefaultTimeout bounds one request, from dial to the end of the response.
const DefaultTimeout = 2 * time.Second

// Hyprctl speaks the request protocol of Hyprland's control socket.
type Hyprctl struct {
	socketPath string
	timeout    time.Duration
}

func NewHyprctl() (*Hyprctl, error) {
	socketPath, err := getSocketPath(hyprctlSocket)
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}
	return NewHyprctlAt(socketPath), nil
}

func NewHyprctlAt(socketPath string) *Hyprctl {
	return &Hyprctl{socketPath: socketPath, timeout: DefaultTimeout}
}

func (c *Hyprctl) GetKeyboards() ([]Keyboard, error) {
	resp, err := c.request("devices", "j")
	if err != nil {
		return nil, err
	}

	var devs devices
	if err := json.Unmarshal(resp, &devs); err != nil {
		return nil, fmt.Errorf("unmarshal devices: %w", err)
	}

	out := make([]Keyboard, 0, len(devs.Keyboards))
	for _, k := range devs.Keyboards {
		out = append(out, k.ToKeyboard())
	}

	return out, nil
}

// GetOption returns the raw JSON description of a config option.
func (c *Hyprctl) GetOption(name string) (gjson.Result, error) {
	resp, err := c.request("getoption "+name, "j")
	if err != nil {
		return gjson.Result{}, err
	}

	if !gjson.ValidBytes(resp) {
		return gjson.Result{}, fmt.Errorf("getoption %s: %s", name, strings.TrimSpace(string(resp)))
	}

	return gjson.ParseBytes(resp), nil
}

func (c *Hyprctl) Keyword(name, value string) error {
	resp, err := c.request(fmt.Sprintf("keyword %s %s", name, value), "")
	if err != nil {
		return err
	}

	if out := strings.TrimSpace(string(resp)); out != "ok" {
		return fmt.Errorf("hyprctl: %s", out)
	}

	return nil
}

func (c *Hyprctl) request(request string, flags string) ([]byte, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("dial hyprctl socket: %w, %w", err, ErrNotRunning)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	if flags != "" {
		request = flags + "/" + request
	}

	if _, err := conn.Write([]byte(request)); err != nil {
		return nil, fmt.Errorf("write to hyprctl socket: %w", err)
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read response from hyprctl socket: %w", err)
	}

	return resp, nil
}
