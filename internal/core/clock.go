package core

import "time"

// TimeSource abstracts wall-clock access so frame pacing can be tested.
type TimeSource interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemTime is the real clock.
type SystemTime struct{}

// Now returns the current time.
func (SystemTime) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine.
func (SystemTime) Sleep(d time.Duration) { time.Sleep(d) }

// FrameClock caps loop iteration rate. It is the only intentional blocking
// point of a game loop.
type FrameClock struct {
	src  TimeSource
	last time.Time
}

// NewFrameClock creates a clock whose first interval starts now.
func NewFrameClock(src TimeSource) *FrameClock {
	if src == nil {
		src = SystemTime{}
	}
	return &FrameClock{src: src, last: src.Now()}
}

// Interval returns the frame duration for a tick rate. Non-positive rates
// fall back to the default rate.
func Interval(targetHz int) time.Duration {
	if targetHz <= 0 {
		targetHz = DefaultTickHz
	}
	return time.Second / time.Duration(targetHz)
}

// Tick blocks until at least 1/targetHz has passed since the previous call
// and returns the actual elapsed duration.
func (c *FrameClock) Tick(targetHz int) time.Duration {
	interval := Interval(targetHz)
	if wait := interval - c.src.Now().Sub(c.last); wait > 0 {
		c.src.Sleep(wait)
	}

	now := c.src.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}
