package core

import (
	"testing"
	"time"
)

// fakeTime advances only when slept on or bumped by the test.
type fakeTime struct {
	now    time.Time
	sleeps []time.Duration
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
}

func TestFrameClockWaitsForInterval(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	clock := NewFrameClock(ft)

	// 4ms of work happened since the last frame
	ft.now = ft.now.Add(4 * time.Millisecond)
	elapsed := clock.Tick(60)

	want := time.Second / 60
	if elapsed != want {
		t.Errorf("elapsed = %v, expected %v", elapsed, want)
	}
	if len(ft.sleeps) != 1 || ft.sleeps[0] != want-4*time.Millisecond {
		t.Errorf("sleeps = %v, expected one sleep of %v", ft.sleeps, want-4*time.Millisecond)
	}
}

func TestFrameClockSlowFrameDoesNotSleep(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	clock := NewFrameClock(ft)

	ft.now = ft.now.Add(50 * time.Millisecond)
	elapsed := clock.Tick(60)

	if elapsed != 50*time.Millisecond {
		t.Errorf("elapsed = %v, expected 50ms", elapsed)
	}
	if len(ft.sleeps) != 0 {
		t.Errorf("slow frame should not sleep, got %v", ft.sleeps)
	}
}

func TestFrameClockConsecutiveTicks(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	clock := NewFrameClock(ft)
	start := ft.now

	for i := 0; i < 60; i++ {
		if got := clock.Tick(60); got < Interval(60) {
			t.Fatalf("tick %d returned %v, shorter than one interval", i, got)
		}
	}

	if total := ft.now.Sub(start); total < time.Second-time.Millisecond {
		t.Errorf("60 ticks at 60Hz took %v, expected about 1s", total)
	}
}

func TestIntervalDefaults(t *testing.T) {
	if Interval(0) != time.Second/60 {
		t.Errorf("Interval(0) = %v, expected default 60Hz", Interval(0))
	}
	if Interval(30) != time.Second/30 {
		t.Errorf("Interval(30) = %v", Interval(30))
	}
}
