//go:build windows

package cmd

import "os"

// SIGTERM is not delivered on Windows, only os.Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}
