package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"paradecast/internal/types"
)

const sampleDailyResponse = `{
	"latitude": 39.115,
	"longitude": -107.658,
	"timezone": "America/Denver",
	"timezone_abbreviation": "MDT",
	"elevation": 2743.0,
	"daily_units": {
		"temperature_2m_max": "°C",
		"temperature_2m_min": "°C",
		"wind_speed_10m_max": "km/h",
		"precipitation_sum": "mm",
		"relative_humidity_2m_mean": "%"
	},
	"daily": {
		"time": ["2024-06-01", "2024-06-02"],
		"temperature_2m_max": [16.9, 18.2],
		"temperature_2m_min": [6.1, 7.4],
		"wind_speed_10m_max": [10.7, 14.2],
		"precipitation_sum": [24.5, 3.1],
		"relative_humidity_2m_mean": [62.1, 55.0]
	}
}`

func TestClient_GetDailyForecast(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"daily":           r.URL.Query().Get("daily"),
			"timezone":        r.URL.Query().Get("timezone"),
			"start_date":      r.URL.Query().Get("start_date"),
			"end_date":        r.URL.Query().Get("end_date"),
			"wind_speed_unit": r.URL.Query().Get("wind_speed_unit"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDailyResponse))
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	dates, err := types.NewDateRange("2024-06-01", "2024-06-02")
	if err != nil {
		t.Fatalf("failed to build date range: %v", err)
	}

	resp, err := client.GetDailyForecast(context.Background(), types.NewCoords(39.115, -107.658), dates, "America/Denver")
	if err != nil {
		t.Fatalf("GetDailyForecast returned error: %v", err)
	}

	if gotQuery["timezone"] != "America/Denver" {
		t.Errorf("timezone = %q, want %q", gotQuery["timezone"], "America/Denver")
	}
	if gotQuery["wind_speed_unit"] != "kmh" {
		t.Errorf("wind_speed_unit = %q, want %q", gotQuery["wind_speed_unit"], "kmh")
	}
	if gotQuery["start_date"] != "2024-06-01" || gotQuery["end_date"] != "2024-06-02" {
		t.Errorf("date range = %q..%q, want 2024-06-01..2024-06-02", gotQuery["start_date"], gotQuery["end_date"])
	}

	if resp.Daily.Days() != 2 {
		t.Fatalf("Days() = %d, want 2", resp.Daily.Days())
	}
	if resp.Daily.Temperature2mMax[0] != 16.9 {
		t.Errorf("Temperature2mMax[0] = %v, want %v", resp.Daily.Temperature2mMax[0], 16.9)
	}
	if resp.Daily.RelativeHumidity2mMean[1] != 55.0 {
		t.Errorf("RelativeHumidity2mMean[1] = %v, want %v", resp.Daily.RelativeHumidity2mMean[1], 55.0)
	}
}

func TestClient_GetDailyForecast_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"reason":"Out of range"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	dates, err := types.NewDateRange("2024-06-01", "2024-06-02")
	if err != nil {
		t.Fatalf("failed to build date range: %v", err)
	}

	if _, err := client.GetDailyForecast(context.Background(), types.NewCoords(0, 0), dates, "GMT"); err == nil {
		t.Fatal("expected error for non-200 response, got nil")
	}
}

func TestDaily_DaysUsesShortestSlice(t *testing.T) {
	daily := Daily{
		Time:                   []string{"2024-06-01", "2024-06-02", "2024-06-03"},
		Temperature2mMax:       []float64{1, 2, 3},
		Temperature2mMin:       []float64{1, 2},
		WindSpeed10mMax:        []float64{1, 2, 3},
		PrecipitationSum:       []float64{1, 2, 3},
		RelativeHumidity2mMean: []float64{1, 2, 3},
	}
	if got := daily.Days(); got != 2 {
		t.Errorf("Days() = %d, want 2", got)
	}
}
