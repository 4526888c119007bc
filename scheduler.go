package collectionmaxxing

import (
	"time"
)

// Timer is a handle for a scheduled function call.
type Timer interface {
	// Stop cancels the scheduled call.
	// It reports whether the call was stopped before it started to run.
	Stop() bool
}

// Scheduler is an interface for scheduling a function call after a delay.
type Scheduler interface {
	// AfterFunc schedules f to run in its own goroutine after d
	// and returns a handle to cancel the call.
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc is a function type that implements the Scheduler interface.
type SchedulerFunc func(d time.Duration, f func()) Timer

// AfterFunc calls the function.
func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) Timer {
	return f(d, fn)
}

// SystemScheduler is the default scheduler that uses time.AfterFunc.
var SystemScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
})
