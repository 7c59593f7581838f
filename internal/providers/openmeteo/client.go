package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"paradecast/internal/types"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=39.11&longitude=-107.65&daily=temperature_2m_max,temperature_2m_min,wind_speed_10m_max,precipitation_sum,relative_humidity_2m_mean&timezone=America%2FDenver&start_date=2024-06-01&end_date=2024-06-02&wind_speed_unit=kmh
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
	}
}

// GetDailyForecast fetches daily aggregates for the given point and window.
// Wind speed is requested in km/h so the response maps directly onto the
// canonical metrics record.
func (c *Client) GetDailyForecast(ctx context.Context, coords types.Coords, dates types.DateRange, timezone string) (*DailyForecastResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	dailyVars := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"wind_speed_10m_max",
		"precipitation_sum",
		"relative_humidity_2m_mean",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("start_date", dates.Start.Format(types.DateLayout))
	q.Set("end_date", dates.End.Format(types.DateLayout))
	q.Set("timezone", timezone)
	q.Set("wind_speed_unit", "kmh")
	q.Set("timeformat", "iso8601")
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

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp DailyForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
