// Package cmd wires the delayrun command line to the scheduler, runner and
// lifecycle packages.
package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/delayrun/delayrun/cmd/common"
	"github.com/urfave/cli"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	return execute(args, bArgs, os.Stdin, os.Stdout, os.Stderr)
}

func execute(args []string, bArgs BuildArgs, in io.Reader, out, errOut io.Writer) error {
	app := cli.App{
		Name:                  "delayrun",
		HelpName:              "delayrun",
		Usage:                 "Run a shell command after a delay.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "delayrun [-d days] [-h hours] [-m minutes] [-s seconds] [-t cron] [-p] -c <command>",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		Writer:                out,
		ErrWriter:             errOut,
		Action: func(ctx *cli.Context) error {
			return run(ctx, in)
		},
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(positional(args))
}

// positional hides every argument from the cli flag parser behind a "--"
// terminator. delayrun flags take space-joined multi-token values, which the
// config package parses from the raw argument list.
func positional(args []string) []string {
	if len(args) == 0 {
		return []string{"delayrun", "--"}
	}
	return append([]string{args[0], "--"}, args[1:]...)
}
