package scheduler

import (
	"errors"
	"time"
)

var (
	// ErrAlreadyScheduled is returned when a second job is scheduled.
	ErrAlreadyScheduled = errors.New("scheduler: a job has already been scheduled")
	// ErrStopped is returned when scheduling on a stopped scheduler.
	ErrStopped = errors.New("scheduler: stopped")
)

// Job is the delayed command owned by the scheduler.
type Job struct {
	// Command is the shell command the job will run. The scheduler itself
	// only carries it for reporting.
	Command string
	// FireAt is the wall-clock time when the job should run.
	FireAt time.Time
}
