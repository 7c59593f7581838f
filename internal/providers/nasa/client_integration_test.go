//go:build integration

package nasa

import (
	"context"
	"testing"
	"time"

	"paradecast/internal/types"
)

func TestClient_GetDailySummaries_Integration(t *testing.T) {
	// Test coordinates: Aspen, CO area (inside the NLDAS-2 grid)
	coords := types.NewCoords(39.11539, -107.65840)

	// Use a recent complete window; NLDAS-2 lags a few days behind realtime
	end := time.Now().AddDate(0, 0, -7)
	start := end.AddDate(0, 0, -2)
	dates, err := types.NewDateRange(start.Format(types.DateLayout), end.Format(types.DateLayout))
	if err != nil {
		t.Fatalf("failed to build date range: %v", err)
	}

	client := NewClient()

	t.Logf("Making API call to NASA Data Rods...")
	t.Logf("Coordinates: lat=%f, lon=%f, window=%s", coords.Latitude, coords.Longitude, dates.String())

	summaries, err := client.GetDailySummaries(context.Background(), coords, dates)
	if err != nil {
		t.Fatalf("Failed to get daily summaries: %v", err)
	}

	if len(summaries) == 0 {
		t.Fatal("Expected at least one complete day, got none")
	}

	for _, day := range summaries {
		t.Logf("Day %s: TairMax=%.2fK TairMin=%.2fK WindMax=%.2fm/s RainfSum=%.2fmm",
			day.Date.Format(types.DateLayout), day.TairMax, day.TairMin, day.WindMax, day.RainfSum)

		// Kelvin sanity range for surface air temperature
		if day.TairMax < 200 || day.TairMax > 340 {
			t.Errorf("TairMax = %v, outside plausible Kelvin range", day.TairMax)
		}
		if day.TairMin > day.TairMax {
			t.Errorf("TairMin %v exceeds TairMax %v", day.TairMin, day.TairMax)
		}
	}
}
