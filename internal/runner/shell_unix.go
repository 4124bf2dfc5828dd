//go:build !windows

package runner

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func defaultShell() []string {
	return []string{"/bin/sh", "-c"}
}

// configureCommand puts the shell in its own process group so that
// cancellation reaches every process the command line started.
func configureCommand(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if cmd.Process.Pid > 0 {
			return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		}
		return cmd.Process.Kill()
	}
}
