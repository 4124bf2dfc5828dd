package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const maxSleepCap = 60 * time.Second

type pendingJob struct {
	job Job
	fn  func()
}

// Scheduler fires a single Job at its FireAt time.
// The callback runs on the scheduler goroutine and must not call Stop.
type Scheduler struct {
	addChan  chan pendingJob
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	ctx      context.Context

	used  atomic.Bool
	armed atomic.Bool
}

// New creates and starts a new Scheduler.
// The scheduler goroutine exits when ctx is cancelled or Stop is called.
func New(ctx context.Context) *Scheduler {
	s := &Scheduler{
		addChan:  make(chan pendingJob),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
		ctx:      ctx,
	}
	go s.run()
	return s
}

// Schedule arms job; fn is invoked once when job.FireAt is reached.
// Only one job may ever be scheduled on a Scheduler.
func (s *Scheduler) Schedule(job Job, fn func()) error {
	if !s.used.CompareAndSwap(false, true) {
		return ErrAlreadyScheduled
	}
	s.armed.Store(true)
	select {
	case s.addChan <- pendingJob{job: job, fn: fn}:
		return nil
	case <-s.done:
		s.armed.Store(false)
		return ErrStopped
	}
}

// Armed reports whether a job is waiting to fire.
func (s *Scheduler) Armed() bool {
	return s.armed.Load()
}

// Stop cancels any pending job and waits for the scheduler goroutine to
// exit. Once Stop returns no callback will run. Stop is safe to call more
// than once and from several goroutines.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.done
}

// Done is closed once the scheduler goroutine has exited.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// run is the scheduler goroutine. It holds the pending job and sleeps with a
// 60s max-sleep-cap, re-checking the wall clock on every wake-up.
func (s *Scheduler) run() {
	defer close(s.done)
	defer s.armed.Store(false)

	var (
		pending *pendingJob
		timer   *time.Timer
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	resetTimer := func() <-chan time.Time {
		if timer != nil {
			timer.Stop()
		}
		if pending == nil {
			// Nothing armed, block on the other channels only
			return nil
		}
		dur := time.Until(pending.job.FireAt)
		if dur > maxSleepCap {
			dur = maxSleepCap
		}
		if dur < 0 {
			dur = 0
		}
		timer = time.NewTimer(dur)
		return timer.C
	}

	var timerCh <-chan time.Time
	for {
		select {
		case <-s.ctx.Done():
			return

		case <-s.stopChan:
			return

		case p := <-s.addChan:
			pending = &p
			timerCh = resetTimer()

		case <-timerCh:
			if pending != nil && !pending.job.FireAt.After(time.Now()) {
				fn := pending.fn
				pending = nil
				s.armed.Store(false)
				if s.stopping() {
					return
				}
				fn()
			}
			timerCh = resetTimer()
		}
	}
}

// stopping reports whether a stop was requested while the timer fired.
func (s *Scheduler) stopping() bool {
	select {
	case <-s.stopChan:
		return true
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}
