package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_ScheduleAndFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx)
	defer s.Stop()

	fired := make(chan time.Time, 1)
	fireAt := time.Now().Add(100 * time.Millisecond)
	err := s.Schedule(Job{Command: "echo hi", FireAt: fireAt}, func() {
		fired <- time.Now()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Armed() {
		t.Error("expected job to be armed after Schedule")
	}

	select {
	case at := <-fired:
		if at.Before(fireAt) {
			t.Errorf("job fired early: %s before %s", at, fireAt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected job to fire")
	}

	if s.Armed() {
		t.Error("expected job to be disarmed after firing")
	}
}

func TestScheduler_PastFireTimeFiresImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx)
	defer s.Stop()

	fired := make(chan struct{}, 1)
	if err := s.Schedule(Job{FireAt: time.Now().Add(-time.Hour)}, func() { fired <- struct{}{} }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("expected past job to fire immediately")
	}
}

func TestScheduler_OnlyOneJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(ctx)
	defer s.Stop()

	job := Job{FireAt: time.Now().Add(time.Hour)}
	if err := s.Schedule(job, func() {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Schedule(job, func() {}); !errors.Is(err, ErrAlreadyScheduled) {
		t.Fatalf("expected ErrAlreadyScheduled, got %v", err)
	}
}

func TestScheduler_StopBeforeFire(t *testing.T) {
	s := New(context.Background())

	var fired atomic.Bool
	err := s.Schedule(Job{FireAt: time.Now().Add(200 * time.Millisecond)}, func() {
		fired.Store(true)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Stop()
	if s.Armed() {
		t.Error("expected no armed job after Stop")
	}

	// Wait past the fire time
	time.Sleep(400 * time.Millisecond)
	if fired.Load() {
		t.Fatal("expected job NOT to fire after Stop")
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := New(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Stop()
		}()
	}
	wg.Wait()
	s.Stop()

	select {
	case <-s.Done():
	default:
		t.Fatal("expected Done to be closed after Stop")
	}
}

func TestScheduler_ScheduleAfterStop(t *testing.T) {
	s := New(context.Background())
	s.Stop()

	err := s.Schedule(Job{FireAt: time.Now()}, func() {
		t.Error("callback must not run on a stopped scheduler")
	})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if s.Armed() {
		t.Error("expected no armed job on a stopped scheduler")
	}
}

func TestScheduler_ShutdownViaContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(ctx)

	var fired atomic.Bool
	err := s.Schedule(Job{FireAt: time.Now().Add(300 * time.Millisecond)}, func() {
		fired.Store(true)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("expected scheduler goroutine to exit on context cancel")
	}

	time.Sleep(500 * time.Millisecond)
	if fired.Load() {
		t.Fatal("expected job NOT to fire after context cancel")
	}
	if s.Armed() {
		t.Error("expected no armed job after context cancel")
	}
}

func TestScheduler_EmptyDoesNotFire(t *testing.T) {
	s := New(context.Background())
	defer s.Stop()

	// Wait a bit to ensure nothing spurious happens
	time.Sleep(100 * time.Millisecond)
	if s.Armed() {
		t.Fatal("expected empty scheduler to have nothing armed")
	}
}
