package nasa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"paradecast/internal/types"
)

// API Docs: https://disc.gsfc.nasa.gov/information/tools?title=Hydrology%20Data%20Rods
// Sample request: https://hydro1.gesdisc.eosdis.nasa.gov/daac-bin/access/timeseries.cgi?variable=NLDAS2:NLDAS_FORA0125_H_v2.0:Tair&type=asc2&location=GEOM:POINT(-107.65,%2039.11)&startDate=2024-06-01T00&endDate=2024-06-03T00
const (
	baseTimeSeriesURL = "https://hydro1.gesdisc.eosdis.nasa.gov/daac-bin/access/timeseries.cgi"

	// The service wants dates with an explicit hour component
	requestDateLayout = "2006-01-02T15"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseTimeSeriesURL,
	}
}

// GetTimeSeries fetches one hourly variable for the given point and window
// and parses the ASCII payload. A single attempt is made; failures are
// reported to the caller, which decides on fallback substitution.
func (c *Client) GetTimeSeries(ctx context.Context, variable string, coords types.Coords, dates types.DateRange) (*TimeSeries, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("variable", variable)
	q.Set("type", "asc2")
	q.Set("location", fmt.Sprintf("GEOM:POINT(%f, %f)", coords.Longitude, coords.Latitude))
	q.Set("startDate", dates.Start.Format(requestDateLayout))
	q.Set("endDate", dates.End.Format(requestDateLayout))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	series, err := ParseTimeSeries(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s series: %w", variable, err)
	}

	return series, nil
}

// GetDailySummaries fetches the temperature, wind, and precipitation series
// for the window and aggregates them into per-day summaries.
func (c *Client) GetDailySummaries(ctx context.Context, coords types.Coords, dates types.DateRange) ([]DailySummary, error) {
	temperature, err := c.GetTimeSeries(ctx, VariableAirTemperature, coords, dates)
	if err != nil {
		return nil, err
	}

	wind, err := c.GetTimeSeries(ctx, VariableWindSpeed, coords, dates)
	if err != nil {
		return nil, err
	}

	precipitation, err := c.GetTimeSeries(ctx, VariablePrecipitation, coords, dates)
	if err != nil {
		return nil, err
	}

	return AggregateDaily(temperature, wind, precipitation), nil
}
