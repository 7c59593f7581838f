package metrics

import (
	"errors"
	"fmt"

	"paradecast/internal/providers/nasa"
	"paradecast/internal/providers/openmeteo"
	"paradecast/internal/types"
)

// ErrFetchFailure signals that no canonical record can be produced from the
// upstream data. The caller recovers by substituting a fallback sample; the
// failure is never surfaced to the end user as a hard error.
var ErrFetchFailure = errors.New("forecast data unavailable or unusable")

// NeutralHumidityPercent stands in for average humidity on provider paths
// that carry no humidity variable.
const NeutralHumidityPercent = 70.0

// Payload is the set of known provider response shapes. Each variant maps
// itself into a CanonicalMetrics record; unrecognized or empty payloads
// report ErrFetchFailure rather than guessing.
type Payload interface {
	Normalize() (types.CanonicalMetrics, error)
}

// Normalize converts a provider payload into the canonical record
func Normalize(p Payload) (types.CanonicalMetrics, error) {
	if p == nil {
		return types.CanonicalMetrics{}, ErrFetchFailure
	}
	return p.Normalize()
}

// DataRodsPayload wraps the NASA Data Rods daily summaries. The prediction
// uses the first complete day of the window; temperatures arrive in Kelvin
// and wind in m/s. NLDAS has no humidity binding here, so the neutral
// average is substituted.
type DataRodsPayload struct {
	Days []nasa.DailySummary
}

func (p DataRodsPayload) Normalize() (types.CanonicalMetrics, error) {
	if len(p.Days) == 0 {
		return types.CanonicalMetrics{}, fmt.Errorf("%w: no complete daily data in window", ErrFetchFailure)
	}

	first := p.Days[0]
	return types.CanonicalMetrics{
		TempMaxCelsius:     types.NewTempFromKelvin(first.TairMax),
		TempMinCelsius:     types.NewTempFromKelvin(first.TairMin),
		WindMaxKmh:         types.NewWindFromMs(first.WindMax),
		PrecipitationSumMm: first.RainfSum,
		AvgHumidityPercent: NeutralHumidityPercent,
	}, nil
}

// OpenMeteoPayload wraps the Open-Meteo daily forecast response. Units are
// already canonical (°C, km/h, mm, %) because the client requests them so.
type OpenMeteoPayload struct {
	Response *openmeteo.DailyForecastResponse
}

func (p OpenMeteoPayload) Normalize() (types.CanonicalMetrics, error) {
	if p.Response == nil {
		return types.CanonicalMetrics{}, fmt.Errorf("%w: empty response", ErrFetchFailure)
	}

	daily := p.Response.Daily
	if daily.Days() == 0 {
		return types.CanonicalMetrics{}, fmt.Errorf("%w: no daily data in response", ErrFetchFailure)
	}

	return types.CanonicalMetrics{
		TempMaxCelsius:     daily.Temperature2mMax[0],
		TempMinCelsius:     daily.Temperature2mMin[0],
		WindMaxKmh:         daily.WindSpeed10mMax[0],
		PrecipitationSumMm: daily.PrecipitationSum[0],
		AvgHumidityPercent: daily.RelativeHumidity2mMean[0],
	}, nil
}
