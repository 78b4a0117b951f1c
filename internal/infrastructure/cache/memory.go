package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor is one client's token bucket and when it was last used
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per key in process memory. It is used
// when no Redis is configured, so limits are per instance.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates a limiter allowing limit hits per window, all of
// which may arrive at once. Idle keys are dropped after two windows.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		ttl:      2 * window,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	// Start cleanup goroutine to remove idle visitors
	go l.cleanupVisitors()

	return l
}

// Allow takes one token from key's bucket
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()
	return l.visitor(key, now).AllowN(now, 1), nil
}

func (l *MemoryLimiter) visitor(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.visitors[key]; ok {
		v.lastSeen = now
		return v.limiter
	}

	limiter := rate.NewLimiter(l.every, l.burst)
	l.visitors[key] = &visitor{limiter: limiter, lastSeen: now}
	return limiter
}

// Close stops the cleanup goroutine
func (l *MemoryLimiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

// cleanupVisitors periodically drops keys idle for longer than ttl
func (l *MemoryLimiter) cleanupVisitors() {
	ticker := time.NewTicker(l.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *MemoryLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, key)
		}
	}
}
