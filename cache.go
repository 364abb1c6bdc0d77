package main

import (
	"sync"
	"time"

	"lg/health-metrics-go-api/internal/metrics"
)

// metricsCache memoizes computed metrics per user for a short TTL. The
// calculators are pure, so a cached result stays correct until the profile
// changes; profile writes call Invalidate rather than waiting out the TTL.
type metricsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[int]cacheEntry
}

type cacheEntry struct {
	metrics   *metrics.ComprehensiveHealthMetrics
	expiresAt time.Time
}

func newMetricsCache(ttl time.Duration) *metricsCache {
	return &metricsCache{
		ttl:     ttl,
		entries: make(map[int]cacheEntry),
	}
}

// get returns the cached result for a user, or nil when absent or expired.
func (mc *metricsCache) get(userID int) *metrics.ComprehensiveHealthMetrics {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	entry, ok := mc.entries[userID]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(mc.entries, userID)
		return nil
	}
	return entry.metrics
}

func (mc *metricsCache) set(userID int, m *metrics.ComprehensiveHealthMetrics) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.entries[userID] = cacheEntry{metrics: m, expiresAt: time.Now().Add(mc.ttl)}
}

// invalidate drops a user's entry. Called on every profile write.
func (mc *metricsCache) invalidate(userID int) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.entries, userID)
}
