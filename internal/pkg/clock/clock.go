package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is safe for use from concurrent bookings in tests.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	step        time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// NewTickingMockClock advances by step on every Now call so consecutive
// writes get distinct timestamps.
func NewTickingMockClock(t time.Time, step time.Duration) *MockClock {
	return &MockClock{currentTime: t, step: step}
}

func (c *MockClock) Now() time.Time {
	if c.step == 0 {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.currentTime
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.currentTime
	c.currentTime = c.currentTime.Add(c.step)
	return now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
