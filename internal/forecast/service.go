package forecast

import (
	"context"
	"fmt"
	"log/slog"

	"paradecast/internal/config"
	"paradecast/internal/likelihood"
	"paradecast/internal/metrics"
	"paradecast/internal/providers/nasa"
	"paradecast/internal/providers/openmeteo"
	"paradecast/internal/timezone"
	"paradecast/internal/types"
)

// PayloadProvider fetches the raw upstream payload for a prediction request
type PayloadProvider interface {
	FetchPayload(ctx context.Context, coords types.Coords, dates types.DateRange) (metrics.Payload, error)
	Name() string
}

// Prediction is the full result of one likelihood computation. Degraded is
// set when the upstream provider failed and a fallback sample was scored
// instead of real data.
type Prediction struct {
	Request     types.PredictionRequest `json:"request"`
	Metrics     types.CanonicalMetrics  `json:"metrics"`
	Likelihoods types.LikelihoodResult  `json:"likelihoods"`
	Degraded    bool                    `json:"degraded"`
	Source      string                  `json:"source"`
}

// Service computes adverse-condition likelihoods for a point and window
type Service interface {
	Predict(ctx context.Context, req types.PredictionRequest) (*Prediction, error)
}

type forecastService struct {
	provider PayloadProvider
	fallback metrics.FallbackStrategy
	logger   *slog.Logger
}

// NewService builds a service from configuration: the selected provider
// binding wrapped with rate limiting and a TTL cache, plus the configured
// fallback strategy.
func NewService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	var provider PayloadProvider

	switch cfg.Forecast.Provider {
	case "nasa":
		provider = NewNasaProvider(nasa.NewClient())
	case "openmeteo":
		tzSvc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		provider = NewOpenMeteoProvider(openmeteo.NewClient(), tzSvc)
	default:
		return nil, fmt.Errorf("unknown forecast provider %q", cfg.Forecast.Provider)
	}

	provider = NewRateLimitedProvider(provider, cfg.Forecast.RateLimitRPS, cfg.Forecast.RateLimitBurst)
	provider = NewCachedProvider(provider, cfg.Forecast.CacheTTL)

	return NewServiceWithProviders(provider, newFallback(cfg), logger), nil
}

// NewServiceWithProviders creates a service with custom collaborators.
// This is useful for testing with mock providers.
func NewServiceWithProviders(provider PayloadProvider, fallback metrics.FallbackStrategy, logger *slog.Logger) Service {
	return &forecastService{
		provider: provider,
		fallback: fallback,
		logger:   logger.With("component", "forecast-service"),
	}
}

func newFallback(cfg *config.Config) metrics.FallbackStrategy {
	if cfg.Fallback.Strategy == "random" {
		return metrics.NewRandomFallback(cfg.Fallback.Seed)
	}
	return metrics.NewFixedFallback()
}

// Predict fetches upstream data, normalizes it, and scores it. A provider
// or normalization failure is recovered by scoring the fallback sample, so
// a valid result is always produced for a valid request.
func (s *forecastService) Predict(ctx context.Context, req types.PredictionRequest) (*Prediction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, degraded := s.fetchMetrics(ctx, req)

	prediction := &Prediction{
		Request:     req,
		Metrics:     record,
		Likelihoods: likelihood.Score(record),
		Degraded:    degraded,
		Source:      s.provider.Name(),
	}

	if degraded {
		prediction.Source = s.fallback.Name() + " fallback"
	}

	s.logger.Debug("computed prediction",
		"latitude", req.Coordinates.Latitude,
		"longitude", req.Coordinates.Longitude,
		"dates", req.Dates.String(),
		"degraded", degraded,
		"source", prediction.Source,
	)

	return prediction, nil
}

func (s *forecastService) fetchMetrics(ctx context.Context, req types.PredictionRequest) (types.CanonicalMetrics, bool) {
	payload, err := s.provider.FetchPayload(ctx, req.Coordinates, req.Dates)
	if err != nil {
		s.logger.Warn("provider fetch failed, substituting fallback sample",
			"provider", s.provider.Name(),
			"fallback", s.fallback.Name(),
			"error", err,
		)
		return s.fallback.Sample(), true
	}

	record, err := metrics.Normalize(payload)
	if err != nil {
		s.logger.Warn("payload unusable, substituting fallback sample",
			"provider", s.provider.Name(),
			"fallback", s.fallback.Name(),
			"error", err,
		)
		return s.fallback.Sample(), true
	}

	return record, false
}
