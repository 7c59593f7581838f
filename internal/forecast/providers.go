package forecast

import (
	"context"
	"fmt"

	"paradecast/internal/metrics"
	"paradecast/internal/providers/nasa"
	"paradecast/internal/providers/openmeteo"
	"paradecast/internal/timezone"
	"paradecast/internal/types"
)

// nasaProvider binds the NASA Data Rods client to the normalizer's
// DataRodsPayload variant
type nasaProvider struct {
	client *nasa.Client
}

func NewNasaProvider(client *nasa.Client) PayloadProvider {
	return &nasaProvider{client: client}
}

func (p *nasaProvider) FetchPayload(ctx context.Context, coords types.Coords, dates types.DateRange) (metrics.Payload, error) {
	days, err := p.client.GetDailySummaries(ctx, coords, dates)
	if err != nil {
		return nil, err
	}
	return metrics.DataRodsPayload{Days: days}, nil
}

func (p *nasaProvider) Name() string { return "nasa-data-rods" }

// openMeteoProvider binds the Open-Meteo daily client to the normalizer's
// OpenMeteoPayload variant. The timezone service supplies the local
// timezone so daily aggregates align with local calendar days.
type openMeteoProvider struct {
	client    *openmeteo.Client
	timezones timezone.Service
}

func NewOpenMeteoProvider(client *openmeteo.Client, timezones timezone.Service) PayloadProvider {
	return &openMeteoProvider{client: client, timezones: timezones}
}

func (p *openMeteoProvider) FetchPayload(ctx context.Context, coords types.Coords, dates types.DateRange) (metrics.Payload, error) {
	tz, err := p.timezones.GetTimezone(coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to determine timezone: %w", err)
	}

	resp, err := p.client.GetDailyForecast(ctx, coords, dates, tz)
	if err != nil {
		return nil, err
	}
	return metrics.OpenMeteoPayload{Response: resp}, nil
}

func (p *openMeteoProvider) Name() string { return "open-meteo" }
