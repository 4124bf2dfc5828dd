// Package scheduler arms the single delayed job of a delayrun process.
// It runs one goroutine that sleeps until the job's fire time, with a
// 60-second max-sleep-cap so NTP steps, DST transitions and system sleep
// cannot push the fire time out by more than a minute.
//
// The scheduler does not persist state: a process holds at most one job and
// the job is gone once it has fired or the scheduler has been stopped.
package scheduler
