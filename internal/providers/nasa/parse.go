package nasa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts observed in Data Rods ASCII payloads
var timeLayouts = []string{
	"2006-01-02T15",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseTimeSeries parses a Data Rods ASCII response. The payload is a short
// metadata header of key=value lines followed by tab-separated
// time/value rows. Rows carrying the missing-value sentinel or an
// unparseable value are dropped.
func ParseTimeSeries(raw string) (*TimeSeries, error) {
	series := &TimeSeries{
		Parameters: make(map[string]string),
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if ts, ok := parseTime(fields[0]); ok {
			if len(fields) < 2 {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if err != nil || value == missingValue {
				continue
			}
			series.Points = append(series.Points, Point{Time: ts, Value: value})
			continue
		}

		// Header lines look like "key=value"
		if key, value, found := strings.Cut(line, "="); found {
			series.Parameters[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	if len(series.Points) == 0 {
		return nil, fmt.Errorf("time series contains no usable data points")
	}

	return series, nil
}

func parseTime(field string) (time.Time, bool) {
	field = strings.TrimSpace(field)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, field); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// AggregateDaily combines the hourly temperature, wind, and precipitation
// series into per-day summaries. A day is kept only when all three series
// contributed at least one observation, matching the upstream behavior of
// dropping incomplete days.
func AggregateDaily(temperature, wind, precipitation *TimeSeries) []DailySummary {
	type dayAccumulator struct {
		tairMax, tairMin   float64
		windMax            float64
		rainfSum           float64
		tempN, windN, rain int
	}

	days := make(map[time.Time]*dayAccumulator)

	day := func(ts time.Time) time.Time {
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}

	accumulator := func(ts time.Time) *dayAccumulator {
		key := day(ts)
		acc, ok := days[key]
		if !ok {
			acc = &dayAccumulator{}
			days[key] = acc
		}
		return acc
	}

	for _, p := range temperature.Points {
		acc := accumulator(p.Time)
		if acc.tempN == 0 || p.Value > acc.tairMax {
			acc.tairMax = p.Value
		}
		if acc.tempN == 0 || p.Value < acc.tairMin {
			acc.tairMin = p.Value
		}
		acc.tempN++
	}

	for _, p := range wind.Points {
		acc := accumulator(p.Time)
		if acc.windN == 0 || p.Value > acc.windMax {
			acc.windMax = p.Value
		}
		acc.windN++
	}

	for _, p := range precipitation.Points {
		acc := accumulator(p.Time)
		acc.rainfSum += p.Value
		acc.rain++
	}

	summaries := make([]DailySummary, 0, len(days))
	for date, acc := range days {
		if acc.tempN == 0 || acc.windN == 0 || acc.rain == 0 {
			continue
		}
		summaries = append(summaries, DailySummary{
			Date:        date,
			TairMax:     acc.tairMax,
			TairMin:     acc.tairMin,
			WindMax:     acc.windMax,
			RainfSum:    acc.rainfSum,
			SampleCount: acc.tempN,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})

	return summaries
}
