package clock

import "time"

// FakeClock is a Clock pinned to a fixed instant, advanced manually.
// Tests use it to make invoice numbering deterministic.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
