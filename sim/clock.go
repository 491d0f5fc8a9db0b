package sim

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidTimestamp is returned in strict mode when a tick timestamp
// goes backwards. Timestamps must be non-decreasing.
var ErrInvalidTimestamp = errors.New("tick timestamp went backwards")

// Clock accumulates elapsed wall-clock time across scheduler ticks and
// reports when a generation should fire, decoupling the simulation rate
// from however often the caller invokes Tick.
type Clock struct {
	interval    time.Duration
	accumulated time.Duration
	previous    time.Time
	started     bool
	strict      bool
}

// NewClock returns a clock firing once per interval. In strict mode a
// backwards timestamp is an error; in lenient mode the delta is clamped to
// zero so a single glitchy frame cannot kill a long-running simulation.
func NewClock(interval time.Duration, strict bool) (*Clock, error) {
	if interval <= 0 {
		return nil, errors.Errorf("[NewClock] interval must be positive, got %v", interval)
	}
	return &Clock{interval: interval, strict: strict}, nil
}

// Tick records one scheduling frame and reports whether a generation
// should fire. The very first call only records the timestamp and never
// fires. At most one generation fires per call: excess accumulated time is
// discarded, not carried forward as multiple generations.
func (c *Clock) Tick(now time.Time) (bool, error) {
	if !c.started {
		c.started = true
		c.previous = now
		return false, nil
	}

	delta := now.Sub(c.previous)
	c.previous = now
	if delta < 0 {
		if c.strict {
			return false, errors.Wrapf(ErrInvalidTimestamp, "[Tick] delta %v", delta)
		}
		delta = 0
	}

	c.accumulated += delta
	if c.accumulated > c.interval {
		c.accumulated = 0
		return true, nil
	}
	return false, nil
}

// Reset returns the clock to its initial state, as on explicit restart.
func (c *Clock) Reset() {
	c.accumulated = 0
	c.previous = time.Time{}
	c.started = false
}
