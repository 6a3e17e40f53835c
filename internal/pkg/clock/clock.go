package clock

import "time"

// Clock abstracts the current time so pricing and suggestion expiry can be
// tested against fixed instants.
type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in UTC. Stay ranges and rule windows are
// UTC-midnight based, so all time comparisons happen in UTC.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
