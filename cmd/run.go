package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/delayrun/delayrun/cmd/common"
	"github.com/delayrun/delayrun/internal/config"
	"github.com/delayrun/delayrun/internal/lifecycle"
	"github.com/delayrun/delayrun/internal/runner"
	"github.com/delayrun/delayrun/internal/scheduler"
	"github.com/delayrun/delayrun/pkg/logger"
	"github.com/urfave/cli"
)

// run is the only action of the app. Configuration problems are printed and
// end the process successfully.
func run(ctx *cli.Context, in io.Reader) error {
	out := ctx.App.Writer

	cfg, err := config.Parse([]string(ctx.Args()))
	switch {
	case errors.Is(err, config.ErrHelp):
		return common.Help(ctx)
	case errors.Is(err, config.ErrVersion):
		return common.GetVersion(ctx)
	case config.IsUsage(err):
		fmt.Fprintln(out, err.Error())
		return nil
	case err != nil:
		return err
	}

	sigCtx, stop := setupShutdownHandler()
	defer stop()

	l := logger.NewStandardLogger(log.New(out, "", 0))
	defer l.Close()

	sched := scheduler.New(sigCtx)
	defer sched.Stop()

	c, err := lifecycle.New(lifecycle.Options{
		Config:   cfg,
		Timer:    sched,
		Runner:   runner.New(),
		Input:    in,
		Output:   out,
		Progress: ctx.App.ErrWriter,
		Logger:   l,
		Grace:    graceDelay,
	})
	if err != nil {
		if config.IsUsage(err) {
			fmt.Fprintln(out, err.Error())
			return nil
		}
		common.PrintRuntimeErr(ctx, "startup", err)
		return err
	}
	return c.Run(sigCtx)
}
