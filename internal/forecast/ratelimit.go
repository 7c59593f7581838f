package forecast

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"paradecast/internal/metrics"
	"paradecast/internal/types"
)

// rateLimitedProvider wraps a PayloadProvider with a token-bucket limiter so
// upstream quotas are respected regardless of request volume.
type rateLimitedProvider struct {
	inner   PayloadProvider
	limiter *rate.Limiter
}

// NewRateLimitedProvider creates a rate-limited provider. rps may be
// fractional for slower-than-one-per-second upstreams.
func NewRateLimitedProvider(inner PayloadProvider, rps float64, burst int) PayloadProvider {
	return &rateLimitedProvider{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *rateLimitedProvider) FetchPayload(ctx context.Context, coords types.Coords, dates types.DateRange) (metrics.Payload, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.inner.FetchPayload(ctx, coords, dates)
}

func (r *rateLimitedProvider) Name() string {
	return r.inner.Name() + " [rate limited]"
}
