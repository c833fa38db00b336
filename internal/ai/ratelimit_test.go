package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestLimiter(max int, clock *fakeClock, slept *[]time.Duration) *RateLimiter {
	l := NewRateLimiter(max)
	l.now = clock.Now
	l.sleep = func(d time.Duration) {
		*slept = append(*slept, d)
		clock.Advance(d)
	}
	return l
}

func TestRateLimiterAcquire_BlocksAtCap(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	var slept []time.Duration
	l := newTestLimiter(3, clock, &slept)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		l.Acquire(ctx)
		clock.Advance(time.Second)
	}
	require.Empty(t, slept)
	require.Equal(t, 3, l.Recorded())

	// window is full: the fourth call must wait until the oldest entry
	// slides out, plus the safety margin
	l.Acquire(ctx)
	require.Len(t, slept, 1)
	expected := limiterWindow - 3*time.Second + limiterSafetyMargin
	require.Equal(t, expected, slept[0])

	// never more than the cap inside any rolling window
	require.LessOrEqual(t, l.Recorded(), 3)
}

func TestRateLimiterAcquire_WindowSlides(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	var slept []time.Duration
	l := newTestLimiter(2, clock, &slept)
	ctx := context.Background()

	l.Acquire(ctx)
	l.Acquire(ctx)
	clock.Advance(61 * time.Second)

	l.Acquire(ctx)
	require.Empty(t, slept, "expired entries must free the window without blocking")
	require.Equal(t, 1, l.Recorded())
}
