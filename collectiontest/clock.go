package collectiontest

import (
	"slices"
	"sync"
	"time"

	"github.com/trvswgnr/collectionmaxxing"
)

// FakeClock is a manually driven time source for tests.
//
// It implements both the Clock and the Scheduler interfaces so the
// component under test reads time and arms timers against a single source.
// Timers fire during Advance, on the goroutine calling Advance.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

var (
	_ collectionmaxxing.Clock     = (*FakeClock)(nil)
	_ collectionmaxxing.Scheduler = (*FakeClock)(nil)
)

// NewFakeClock creates a clock frozen at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to run once the clock has advanced d past now.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) collectionmaxxing.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{
		clock:    c,
		deadline: c.now.Add(d),
		f:        f,
	}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d and fires every timer whose
// deadline falls within the window, in deadline order; timers sharing a
// deadline fire in registration order. The clock reads the firing timer's
// deadline while its callback runs, and no internal lock is held during
// the call, so a callback may read the clock, arm new timers or stop
// pending ones. Timers armed by a callback fire in the same Advance when
// they are due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		t := c.nextDueLocked(target)
		if t == nil {
			break
		}
		if t.deadline.After(c.now) {
			c.now = t.deadline
		}
		c.unregisterLocked(t)
		f := t.f
		c.mu.Unlock()
		f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// nextDueLocked returns the pending timer with the earliest deadline not
// after target. Ties go to the earliest registered timer.
func (c *FakeClock) nextDueLocked(target time.Time) *fakeTimer {
	var due *fakeTimer
	for _, t := range c.timers {
		if t.deadline.After(target) {
			continue
		}
		if due == nil || t.deadline.Before(due.deadline) {
			due = t
		}
	}
	return due
}

func (c *FakeClock) unregisterLocked(t *fakeTimer) {
	t.done = true
	c.timers = slices.DeleteFunc(c.timers, func(x *fakeTimer) bool { return x == t })
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	f        func()
	done     bool
}

// Stop cancels the timer. Like time.Timer.Stop it reports whether the
// timer was still pending.
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.clock.unregisterLocked(t)
	return true
}
