// Package runner executes the delayed command through the host shell.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the command
// has been killed.
const waitDelay = 2 * time.Second

// Result is the outcome of one command execution.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set when the command could not be started or exited non-zero.
	Err      error
	Duration time.Duration
}

// Failed reports whether the command failed to run or exited non-zero.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Description returns a one-line failure description followed by the
// captured stderr, if any.
func (r Result) Description() string {
	if r.Err == nil {
		return ""
	}
	desc := fmt.Sprintf("command failed: %s: %v", r.Command, r.Err)
	if stderr := strings.TrimSpace(r.Stderr); stderr != "" {
		desc += "\n" + stderr
	}
	return desc
}

// Runner runs shell commands.
type Runner struct {
	shell []string
}

// New returns a Runner using the platform's default shell.
func New() *Runner {
	return &Runner{shell: defaultShell()}
}

// Run executes command and waits for it to finish. Failures are reported in
// the Result, never as a separate error. Cancelling ctx kills the command
// together with any children it spawned.
func (r *Runner) Run(ctx context.Context, command string) Result {
	res := Result{Command: command}
	if len(r.shell) == 0 {
		res.Err = errors.New("no shell configured")
		res.ExitCode = -1
		return res
	}

	args := append(append([]string{}, r.shell[1:]...), command)
	cmd := exec.CommandContext(ctx, r.shell[0], args...)
	configureCommand(cmd)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %v", ctx.Err(), err)
		}
		res.Err = err
	}
	return res
}
