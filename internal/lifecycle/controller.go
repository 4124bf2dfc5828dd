// Package lifecycle drives a delayrun process from startup to exit.
//
// A single goroutine selects over the four event sources of the process:
// the armed timer, completion of the command, lines typed on stdin and
// cancellation of the context by an interrupt.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/delayrun/delayrun/internal/config"
	"github.com/delayrun/delayrun/internal/runner"
	"github.com/delayrun/delayrun/internal/scheduler"
	"github.com/delayrun/delayrun/internal/status"
	"github.com/delayrun/delayrun/pkg/logger"
	"github.com/dustin/go-humanize"
)

// GraceDelay is how long the process stays alive after launching the
// command. Output the command produces after this window is lost.
const GraceDelay = 5 * time.Second

const fireTimeLayout = "2006-01-02 15:04:05"

// Timer arms the single job of the process.
type Timer interface {
	Schedule(job scheduler.Job, fn func()) error
	Armed() bool
	Stop()
}

// CommandRunner runs the job's command.
type CommandRunner interface {
	Run(ctx context.Context, command string) runner.Result
}

// Options configures a Controller.
type Options struct {
	Config config.Config
	// Start is the instant offsets are counted from; defaults to Now().
	Start  time.Time
	Timer  Timer
	Runner CommandRunner
	Input  io.Reader
	Output io.Writer
	// Progress receives the countdown bar when Config.Progress is set.
	Progress io.Writer
	Logger   logger.Logger
	// Grace defaults to GraceDelay.
	Grace time.Duration
	Now   func() time.Time
}

// Controller owns the state machine of one process.
type Controller struct {
	opts     Options
	job      scheduler.Job
	wait     time.Duration
	reporter *status.Reporter
	state    atomic.Int32

	killCommand context.CancelFunc
}

// New computes the fire time and returns a Controller in StateStartup.
func New(opts Options) (*Controller, error) {
	if opts.Timer == nil || opts.Runner == nil {
		return nil, errors.New("lifecycle: timer and runner are required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Start.IsZero() {
		opts.Start = opts.Now()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	if opts.Grace <= 0 {
		opts.Grace = GraceDelay
	}

	wait, err := opts.Config.Total(opts.Start)
	if err != nil {
		return nil, err
	}
	fireAt := opts.Start.Add(wait)
	c := &Controller{
		opts: opts,
		job:  scheduler.Job{Command: opts.Config.Command, FireAt: fireAt},
		wait: wait,
		reporter: &status.Reporter{
			Command: opts.Config.Command,
			FireAt:  fireAt,
			Now:     opts.Now,
		},
	}
	c.setState(StateStartup)
	return c, nil
}

// Job returns the scheduled job.
func (c *Controller) Job() scheduler.Job {
	return c.job
}

// State returns the current state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

func (c *Controller) setState(s State) {
	c.state.Store(int32(s))
}

// Run arms the job and processes events until the grace window after the
// command launch has elapsed or ctx is cancelled. Command failures are
// reported, not returned; an interrupt is a normal exit and returns nil.
func (c *Controller) Run(ctx context.Context) error {
	fired := make(chan struct{}, 1)
	err := c.opts.Timer.Schedule(c.job, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		c.setState(StateTerminated)
		return fmt.Errorf("arm job: %w", err)
	}
	c.setState(StateWaiting)
	c.announce()

	var countdown *status.Countdown
	if c.opts.Config.Progress && c.opts.Progress != nil {
		countdown = status.StartCountdown(c.opts.Progress, c.opts.Start, c.job.FireAt, c.opts.Now)
	}
	stopCountdown := func() {
		if countdown != nil {
			countdown.Stop()
			countdown = nil
		}
	}
	defer stopCountdown()

	inputCtx, stopInput := context.WithCancel(context.Background())
	defer stopInput()
	var lines <-chan string
	if c.opts.Input != nil {
		lines = status.Lines(inputCtx, c.opts.Input)
	}

	// The command gets its own context: an interrupt kills it, the end of
	// the grace window leaves it running.
	runCtx, cancelRun := context.WithCancel(context.Background())
	c.killCommand = cancelRun

	var (
		results    <-chan runner.Result
		drain      <-chan time.Time
		drainTimer *time.Timer
	)
	defer func() {
		if drainTimer != nil {
			drainTimer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			stopCountdown()
			c.shutdown()
			return nil

		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			fmt.Fprintln(c.opts.Output, c.reporter.Respond(line))

		case <-fired:
			if ctx.Err() != nil {
				stopCountdown()
				c.shutdown()
				return nil
			}
			stopCountdown()
			stopInput()
			lines = nil
			c.setState(StateRunning)
			fmt.Fprintf(c.opts.Output, "running: %s\n", c.job.Command)
			results = c.start(runCtx)
			drainTimer = time.NewTimer(c.opts.Grace)
			drain = drainTimer.C

		case res := <-results:
			results = nil
			c.report(res)
			c.setState(StateDraining)

		case <-drain:
			if c.State() == StateRunning {
				c.opts.Logger.Warning("command still running after %s, its remaining output is discarded", c.opts.Grace)
			}
			c.opts.Timer.Stop()
			c.setState(StateTerminated)
			c.opts.Logger.Info("shutting down")
			return nil
		}
	}
}

func (c *Controller) start(ctx context.Context) <-chan runner.Result {
	ch := make(chan runner.Result, 1)
	go func() {
		ch <- c.opts.Runner.Run(ctx, c.job.Command)
	}()
	return ch
}

func (c *Controller) announce() {
	out := c.opts.Output
	fmt.Fprintf(out, "command: %s\n", c.job.Command)
	fmt.Fprintf(out, "waiting %s\n", status.FormatRemaining(c.wait))
	fmt.Fprintf(out, "fires at %s (%s)\n",
		c.job.FireAt.Format(fireTimeLayout),
		humanize.RelTime(c.job.FireAt, c.opts.Start, "ago", "from now"),
	)
}

func (c *Controller) report(res runner.Result) {
	if res.Failed() {
		c.opts.Logger.Error("%s", res.Description())
		return
	}
	if res.Stdout != "" {
		fmt.Fprint(c.opts.Output, res.Stdout)
	}
	if res.Stderr != "" {
		fmt.Fprint(c.opts.Output, res.Stderr)
	}
}

// shutdown cancels the armed job, kills a running command and confirms
// nothing is left armed.
func (c *Controller) shutdown() {
	if c.killCommand != nil {
		c.killCommand()
	}
	c.opts.Timer.Stop()
	if c.opts.Timer.Armed() {
		c.opts.Logger.Warning("job still armed after stop")
	}
	c.setState(StateTerminated)
	c.opts.Logger.Info("shutting down")
}
