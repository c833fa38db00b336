package ai

import (
	"context"
	"sync"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	limiterWindow = time.Minute
	// pushed past the window edge so the oldest entry has really expired
	// by the time the caller wakes up
	limiterSafetyMargin = 10 * time.Millisecond
)

// RateLimiter caps outbound generation calls to maxPerMinute within any
// trailing 60-second window. Acquire blocks the caller until a slot frees
// up; blocked callers serialize through the limiter's mutex. The limiter
// is in-process only, it does not coordinate across processes.
type RateLimiter struct {
	mu           sync.Mutex
	maxPerMinute int
	timestamps   []time.Time
	now          func() time.Time
	sleep        func(time.Duration)
}

func NewRateLimiter(maxPerMinute int) *RateLimiter {
	if maxPerMinute <= 0 {
		maxPerMinute = 60
	}
	return &RateLimiter{
		maxPerMinute: maxPerMinute,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// Acquire waits until a call slot is available, then records the call.
func (l *RateLimiter) Acquire(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.dropExpiredLocked(now)
	if len(l.timestamps) >= l.maxPerMinute {
		wait := limiterWindow - now.Sub(l.timestamps[0]) + limiterSafetyMargin
		if wait > 0 {
			logutil.GetLogger(ctx).Info("generation rate limit reached", zap.Duration("wait", wait))
			l.sleep(wait)
		}
		l.dropExpiredLocked(l.now())
	}
	l.timestamps = append(l.timestamps, l.now())
}

// Recorded returns how many calls currently sit inside the window.
func (l *RateLimiter) Recorded() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dropExpiredLocked(l.now())
	return len(l.timestamps)
}

func (l *RateLimiter) dropExpiredLocked(now time.Time) {
	cut := 0
	for cut < len(l.timestamps) && now.Sub(l.timestamps[cut]) > limiterWindow {
		cut++
	}
	if cut > 0 {
		l.timestamps = append(l.timestamps[:0], l.timestamps[cut:]...)
	}
}
