// Package timeoutset provides a set whose elements expire after a timeout.
//
// Every element is inserted with a time budget: the default given to New,
// or a per-element override given to AddWithTimeout. When the budget runs
// out the element is evicted by a timer and the optional eviction callback
// is told about it. Re-adding or refreshing an element restarts its budget.
//
// Timers come from a Scheduler and deadlines from a Clock, so tests can
// drive both with a fake time source.
//
// The set serializes its methods with the expiry timers through an internal
// lock. Eviction callbacks run outside the lock, on the scheduler's
// goroutine, and may call back into the set.
package timeoutset
