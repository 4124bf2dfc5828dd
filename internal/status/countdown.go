package status

import (
	"context"
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Countdown draws a progress bar that fills up while the job waits.
type Countdown struct {
	progress *mpb.Progress
	bar      *mpb.Bar
	cancel   context.CancelFunc
	done     chan struct{}
}

// StartCountdown starts rendering a countdown to fireAt on w, counted from
// start. Call Stop to remove it.
func StartCountdown(w io.Writer, start, fireAt time.Time, now func() time.Time) *Countdown {
	if now == nil {
		now = time.Now
	}
	total := int64(fireAt.Sub(start) / time.Second)
	if total < 1 {
		total = 1
	}

	p := mpb.New(
		mpb.WithOutput(w),
		mpb.WithWidth(40),
		mpb.WithRefreshRate(500*time.Millisecond),
	)
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	bar := p.New(total,
		barStyle,
		mpb.PrependDecorators(
			decor.Name("waiting", decor.WC{W: len("waiting") + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(
				decor.Any(func(decor.Statistics) string {
					return FormatRemaining(fireAt.Sub(now()))
				}, decor.WC{W: 12}),
				"running",
			),
		),
	)

	ctx, cancel := context.WithCancel(context.Background())
	c := &Countdown{
		progress: p,
		bar:      bar,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go c.tick(ctx, start, total, now)
	return c
}

func (c *Countdown) tick(ctx context.Context, start time.Time, total int64, now func() time.Time) {
	defer close(c.done)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			elapsed := int64(now().Sub(start) / time.Second)
			if elapsed >= total {
				c.bar.SetCurrent(total)
				return
			}
			c.bar.SetCurrent(elapsed)
		}
	}
}

// Stop removes the bar and waits for the renderer to finish. It must be
// called exactly once.
func (c *Countdown) Stop() {
	c.cancel()
	<-c.done
	if !c.bar.Completed() {
		c.bar.Abort(false)
	}
	c.progress.Wait()
}
