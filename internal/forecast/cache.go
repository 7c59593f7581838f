package forecast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"paradecast/internal/metrics"
	"paradecast/internal/types"
)

// cachedProvider wraps a PayloadProvider and caches successful payloads per
// point and window for a fixed TTL. Failures are never cached, so the next
// request retries the upstream.
type cachedProvider struct {
	inner   PayloadProvider
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	payload   metrics.Payload
	fetchedAt time.Time
}

func NewCachedProvider(inner PayloadProvider, ttl time.Duration) PayloadProvider {
	return &cachedProvider{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *cachedProvider) FetchPayload(ctx context.Context, coords types.Coords, dates types.DateRange) (metrics.Payload, error) {
	key := cacheKey(coords, dates)

	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if found && time.Since(entry.fetchedAt) < c.ttl {
		return entry.payload, nil
	}

	payload, err := c.inner.FetchPayload(ctx, coords, dates)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{payload: payload, fetchedAt: time.Now()}
	c.mu.Unlock()

	return payload, nil
}

func (c *cachedProvider) Name() string {
	return c.inner.Name() + " [cached]"
}

func cacheKey(coords types.Coords, dates types.DateRange) string {
	return fmt.Sprintf("%.4f,%.4f|%s|%s",
		coords.Latitude, coords.Longitude,
		dates.Start.Format(types.DateLayout), dates.End.Format(types.DateLayout))
}
