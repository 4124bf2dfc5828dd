package status

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"
)

// Reporter answers status queries about a pending job.
type Reporter struct {
	Command string
	FireAt  time.Time
	// Now defaults to time.Now.
	Now func() time.Time
}

// Respond returns the reply to one line of input: the pending command for
// "c" (any case, surrounding space ignored), the remaining time otherwise.
func (r *Reporter) Respond(line string) string {
	if strings.EqualFold(strings.TrimSpace(line), "c") {
		return "command: " + r.Command
	}
	return "waiting " + FormatRemaining(r.Remaining())
}

// Remaining returns the time left until the job fires, never negative.
func (r *Reporter) Remaining() time.Duration {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	left := r.FireAt.Sub(now())
	if left < 0 {
		return 0
	}
	return left
}

// Lines reads in line by line on a separate goroutine. The channel is closed
// when in reaches EOF or fails, or once ctx is done. A goroutine blocked on a
// terminal read is not interruptible and is left to exit with the process.
func Lines(ctx context.Context, in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
