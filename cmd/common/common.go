// Package common provides the help, version and error printing helpers
// shared by the delayrun command line.
package common

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

// VersionCmdStr holds the formatted version string printed for --version.
// It is populated at runtime by cmd.Execute with build-time information
// including version, platform, build date and commit hash.
var VersionCmdStr string

var showAppHelp = cli.ShowAppHelp

// SetShowAppHelp replaces the help renderer and returns the previous one.
func SetShowAppHelp(fn func(*cli.Context) error) func(*cli.Context) error {
	prev := showAppHelp
	showAppHelp = fn
	return prev
}

// Help renders the application help template to the app writer.
func Help(ctx *cli.Context) error {
	return showAppHelp(ctx)
}

// GetVersion prints the version string to the app writer.
func GetVersion(ctx *cli.Context) error {
	_, err := fmt.Fprintln(writer(ctx), VersionCmdStr)
	return err
}

// PrintRuntimeErr formats and prints a runtime error message. The ctx
// parameter may be nil, in which case the application name is derived from
// os.Args[0] and the message goes to stdout.
func PrintRuntimeErr(ctx *cli.Context, action string, err error) {
	w := writer(ctx)
	if err == nil {
		fmt.Fprintln(w, "err is nil", "[", action, "]")
		return
	}
	var name string
	if ctx != nil && ctx.App != nil {
		name = ctx.App.HelpName
	} else {
		name = os.Args[0]
	}
	fmt.Fprintf(w, "%s: %s: %s\n", name, action, err.Error())
}

func writer(ctx *cli.Context) io.Writer {
	if ctx != nil && ctx.App != nil && ctx.App.Writer != nil {
		return ctx.App.Writer
	}
	return os.Stdout
}
