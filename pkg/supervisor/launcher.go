package supervisor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

type ExecLauncher struct {
	// Dir resolves relative detector paths. Empty means the directory of the
	// running executable.
	Dir string
}

// Launch starts path directly, without arguments or a shell, with standard
// streams connected to the null device.
func (l ExecLauncher) Launch(path string) (Process, error) {
	resolved, err := l.resolve(path)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(resolved)
	cmd.Dir = filepath.Dir(resolved)
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", resolved, err)
	}

	return &execProcess{cmd: cmd}, nil
}

func (l ExecLauncher) resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	dir := l.Dir
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		dir = filepath.Dir(exe)
	}

	return filepath.Join(dir, path), nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Kill() error {
	return p.cmd.Process.Kill()
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}
