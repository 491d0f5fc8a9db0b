package sim

import "time"

// RestartPolicy decides when an extinct board should be reseeded. After
// the living cell count reaches zero the policy arms a deadline one Pause
// in the future; the grid does not advance until the deadline passes, at
// which point a full reseed is due. Any return of life disarms it.
type RestartPolicy struct {
	Pause time.Duration

	deadline time.Time
}

// ShouldReseed reports whether a full reseed is due at now given the
// current living cell count.
func (p *RestartPolicy) ShouldReseed(now time.Time, living int) bool {
	if living > 0 {
		p.deadline = time.Time{}
		return false
	}
	if p.deadline.IsZero() {
		p.deadline = now.Add(p.Pause)
		return false
	}
	return !now.Before(p.deadline)
}

// Reset disarms any pending deadline.
func (p *RestartPolicy) Reset() {
	p.deadline = time.Time{}
}
