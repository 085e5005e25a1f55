package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request counts in fixed windows per client key. The
// dashboard has no accounts, so the middleware keys it by client IP.
type Limiter struct {
	mu            sync.Mutex
	limit         int
	windowSeconds int
	windows       map[string]*window
}

type window struct {
	count     int
	windowEnd time.Time
}

// NewLimiter creates a limiter allowing limit requests per windowSeconds
// for each client key.
func NewLimiter(limit, windowSeconds int) *Limiter {
	return &Limiter{
		limit:         limit,
		windowSeconds: windowSeconds,
		windows:       make(map[string]*window),
	}
}

// Allow returns true if the request from key is within the configured limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	windowDuration := time.Duration(l.windowSeconds) * time.Second

	win := l.windows[key]
	if win == nil || now.After(win.windowEnd) {
		l.windows[key] = &window{
			count:     1,
			windowEnd: now.Add(windowDuration),
		}
		return true
	}

	if win.count < l.limit {
		win.count++
		return true
	}

	return false
}
