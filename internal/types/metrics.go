package types

// Unit conversion factors for upstream data
const (
	KelvinOffset = 273.15
	MsToKmh      = 3.6
)

// CanonicalMetrics holds the five normalized physical inputs the likelihood
// engine consumes, regardless of which provider produced them.
type CanonicalMetrics struct {
	TempMaxCelsius     float64 `json:"temp_max"`      // daily maximum air temperature, may be negative
	TempMinCelsius     float64 `json:"temp_min"`      // daily minimum air temperature, may be negative
	WindMaxKmh         float64 `json:"wind_max"`      // daily maximum wind speed
	PrecipitationSumMm float64 `json:"precipitation_sum"` // accumulated precipitation over the window
	AvgHumidityPercent float64 `json:"avg_humidity"`  // average relative humidity, nominally 0-100
}

// NewTempFromKelvin converts an upstream Kelvin reading to Celsius
func NewTempFromKelvin(kelvin float64) float64 {
	return kelvin - KelvinOffset
}

// NewWindFromMs converts an upstream m/s wind speed to km/h
func NewWindFromMs(ms float64) float64 {
	return ms * MsToKmh
}
