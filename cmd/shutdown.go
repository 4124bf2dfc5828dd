package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// setupShutdownHandler returns a context that is canceled when the first
// shutdown signal is received. Later signals are swallowed so that shutdown
// runs once. The returned function unregisters the handler and may be
// called any number of times.
func setupShutdownHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, shutdownSignals...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigChan:
				cancel()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(sigChan) // Unregister handler to prevent leak
			close(done)
			cancel()
		})
	}
	return ctx, stop
}
