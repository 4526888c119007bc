package collectiontest_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/trvswgnr/collectionmaxxing/collectiontest"
)

func TestFakeClock_Now(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := collectiontest.NewFakeClock(base)
	if got := clock.Now(); !got.Equal(base) {
		t.Errorf("unexpected now: got=%v want=%v", got, base)
	}
	clock.Advance(90 * time.Minute)
	if got, want := clock.Now(), base.Add(90*time.Minute); !got.Equal(want) {
		t.Errorf("unexpected now: got=%v want=%v", got, want)
	}
}

func TestFakeClock_AfterFunc(t *testing.T) {
	t.Parallel()

	clock := collectiontest.NewFakeClock(time.Now())

	fired := 0
	clock.AfterFunc(time.Hour, func() { fired++ })

	clock.Advance(time.Hour - time.Second)
	if fired != 0 {
		t.Error("timer should not fire before its deadline")
	}
	clock.Advance(time.Second)
	if fired != 1 {
		t.Error("timer should fire at its deadline")
	}
	clock.Advance(time.Hour)
	if fired != 1 {
		t.Error("timer should fire exactly once")
	}
}

func TestFakeClock_FiringOrder(t *testing.T) {
	t.Parallel()

	clock := collectiontest.NewFakeClock(time.Now())

	var order []string
	clock.AfterFunc(3*time.Second, func() { order = append(order, "c") })
	clock.AfterFunc(time.Second, func() { order = append(order, "a") })
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b1") })
	clock.AfterFunc(2*time.Second, func() { order = append(order, "b2") })

	clock.Advance(3 * time.Second)
	if diff := cmp.Diff([]string{"a", "b1", "b2", "c"}, order); diff != "" {
		t.Errorf("unexpected order: (-want, +got) = %s", diff)
	}
}

func TestFakeClock_CallbackObservesItsDeadline(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := collectiontest.NewFakeClock(base)

	var at time.Time
	clock.AfterFunc(time.Minute, func() { at = clock.Now() })

	clock.Advance(time.Hour)
	if want := base.Add(time.Minute); !at.Equal(want) {
		t.Errorf("unexpected time in callback: got=%v want=%v", at, want)
	}
	if got, want := clock.Now(), base.Add(time.Hour); !got.Equal(want) {
		t.Errorf("unexpected now after advance: got=%v want=%v", got, want)
	}
}

func TestFakeClock_CallbackSchedulesTimer(t *testing.T) {
	t.Parallel()

	clock := collectiontest.NewFakeClock(time.Now())

	var order []string
	clock.AfterFunc(time.Second, func() {
		order = append(order, "first")
		clock.AfterFunc(time.Second, func() { order = append(order, "second") })
	})

	// The second timer is armed mid-advance and is due inside the window,
	// so a single Advance fires both.
	clock.Advance(3 * time.Second)
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("unexpected order: (-want, +got) = %s", diff)
	}
}

func TestFakeClock_Stop(t *testing.T) {
	t.Parallel()

	clock := collectiontest.NewFakeClock(time.Now())

	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })
	if !timer.Stop() {
		t.Error("stop of a pending timer should report true")
	}
	if timer.Stop() {
		t.Error("second stop should report false")
	}
	clock.Advance(time.Hour)
	if fired {
		t.Error("stopped timer should not fire")
	}

	expired := clock.AfterFunc(time.Second, func() {})
	clock.Advance(time.Second)
	if expired.Stop() {
		t.Error("stop after firing should report false")
	}
}

func TestFakeClock_Pending(t *testing.T) {
	t.Parallel()

	clock := collectiontest.NewFakeClock(time.Now())

	first := clock.AfterFunc(time.Second, func() {})
	clock.AfterFunc(time.Minute, func() {})
	if got := clock.Pending(); got != 2 {
		t.Errorf("unexpected pending count: %d", got)
	}
	first.Stop()
	if got := clock.Pending(); got != 1 {
		t.Errorf("unexpected pending count after stop: %d", got)
	}
	clock.Advance(time.Hour)
	if got := clock.Pending(); got != 0 {
		t.Errorf("unexpected pending count after advance: %d", got)
	}
}
