package hyprland

import (
	"bufio"
	"fmt"
	"net"
	"strings"
)

// Client reads Hyprland's event socket line by line.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) ReadLine() (string, error) {
	str, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read from hypr socket: %w", err)
	}
	return strings.TrimSuffix(str, "\n"), nil
}

func Connect() (*Client, error) {
	socketPath, err := getSocketPath(eventSocket)
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}

	return ConnectTo(socketPath)
}

func ConnectTo(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}
