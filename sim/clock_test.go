package sim

import (
	"errors"
	"testing"
	"time"
)

var base = time.Unix(1000, 0)

func newTestClock(t *testing.T, interval time.Duration, strict bool) *Clock {
	t.Helper()
	clock, err := NewClock(interval, strict)
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return clock
}

func mustTick(t *testing.T, clock *Clock, now time.Time) bool {
	t.Helper()
	fired, err := clock.Tick(now)
	if err != nil {
		t.Fatalf("Tick(%v): %v", now, err)
	}
	return fired
}

func TestNewClockRejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		if _, err := NewClock(interval, false); err == nil {
			t.Fatalf("NewClock(%v) accepted non-positive interval", interval)
		}
	}
}

func TestFirstTickNeverFires(t *testing.T) {
	clock := newTestClock(t, time.Second, true)

	// Regardless of how large the first timestamp is, there is no
	// meaningful previous frame yet.
	if mustTick(t, clock, base.Add(time.Hour)) {
		t.Fatal("first tick fired a generation")
	}
}

func TestAccumulationFiresExactlyOnce(t *testing.T) {
	clock := newTestClock(t, time.Second, true)

	mustTick(t, clock, base)
	if mustTick(t, clock, base.Add(600*time.Millisecond)) {
		t.Fatal("fired at accumulated 0.6s on a 1s interval")
	}
	if !mustTick(t, clock, base.Add(1200*time.Millisecond)) {
		t.Fatal("did not fire at accumulated 1.2s on a 1s interval")
	}
}

func TestAccumulatorResetsToZeroNotRemainder(t *testing.T) {
	clock := newTestClock(t, time.Second, true)

	mustTick(t, clock, base)
	mustTick(t, clock, base.Add(600*time.Millisecond))
	mustTick(t, clock, base.Add(1200*time.Millisecond)) // fires, accumulator -> 0

	// 0.9s more. With the 0.2s overflow carried this would fire (1.1s);
	// with a clean reset it must not.
	if mustTick(t, clock, base.Add(2100*time.Millisecond)) {
		t.Fatal("accumulator kept overflow remainder after firing")
	}
	if !mustTick(t, clock, base.Add(3200*time.Millisecond)) {
		t.Fatal("did not fire once accumulation passed the interval again")
	}
}

func TestLongGapFiresOnlyOnce(t *testing.T) {
	clock := newTestClock(t, time.Second, true)

	mustTick(t, clock, base)
	if !mustTick(t, clock, base.Add(10*time.Second)) {
		t.Fatal("did not fire after a 10s gap")
	}
	// Excess time was discarded: a short follow-up frame must not fire.
	if mustTick(t, clock, base.Add(10*time.Second+500*time.Millisecond)) {
		t.Fatal("fired twice for a single long gap")
	}
}

func TestNonMonotonicTimestampStrict(t *testing.T) {
	clock := newTestClock(t, time.Second, true)

	mustTick(t, clock, base)
	if _, err := clock.Tick(base.Add(-time.Second)); !errors.Is(err, ErrInvalidTimestamp) {
		t.Fatalf("strict clock error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestNonMonotonicTimestampLenientClampsToZero(t *testing.T) {
	clock := newTestClock(t, time.Second, false)

	mustTick(t, clock, base.Add(2*time.Second))
	if mustTick(t, clock, base) {
		t.Fatal("backwards timestamp fired a generation")
	}

	// previous was still updated to the backwards timestamp, so the next
	// delta is measured from it.
	if !mustTick(t, clock, base.Add(1100*time.Millisecond)) {
		t.Fatal("did not fire after recovering from the glitchy frame")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	clock := newTestClock(t, time.Second, true)

	mustTick(t, clock, base)
	mustTick(t, clock, base.Add(900*time.Millisecond))

	clock.Reset()

	// Post-reset the next call is a "first tick" again and never fires.
	if mustTick(t, clock, base.Add(time.Hour)) {
		t.Fatal("first tick after Reset fired a generation")
	}
}
