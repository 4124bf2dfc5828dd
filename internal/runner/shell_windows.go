//go:build windows

package runner

import "os/exec"

func defaultShell() []string {
	return []string{"cmd", "/C"}
}

// configureCommand keeps exec's default cancellation, which kills the
// process.
func configureCommand(cmd *exec.Cmd) {}
