package worker

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter rate-limits reads per source directory so one large directory
// cannot starve the others in a batch
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter. A non-positive rate disables limiting.
func NewLimiter(filesPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	limit := rate.Limit(filesPerSecond)
	if filesPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  limit,
		defaultBurst: burst,
	}
}

// Wait blocks until the source of path may be read again
func (l *Limiter) Wait(ctx context.Context, path string) error {
	return l.getLimiter(SourceKey(path)).Wait(ctx)
}

func (l *Limiter) getLimiter(source string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[source]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[source]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[source] = limiter

	return limiter
}

// SetSourceRate overrides the limit for one source directory. A
// non-positive rate lifts the limit for that directory.
func (l *Limiter) SetSourceRate(dir string, filesPerSecond float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if burst <= 0 {
		burst = l.defaultBurst
	}
	limit := rate.Limit(filesPerSecond)
	if filesPerSecond <= 0 {
		limit = rate.Inf
	}

	l.limiters[filepath.Clean(dir)] = rate.NewLimiter(limit, burst)
}

// SourceKey is the directory a file is read from. Stdin ("-") is its own
// source.
func SourceKey(path string) string {
	if path == "-" {
		return path
	}
	return filepath.Dir(filepath.Clean(path))
}
