package metrics

import (
	"math/rand"

	"paradecast/internal/types"
)

// FallbackStrategy produces a substitute metrics record when the upstream
// provider fails, so a likelihood result can always be computed. The caller
// selects the strategy; predictions built on a fallback sample are labeled
// as degraded.
type FallbackStrategy interface {
	Sample() types.CanonicalMetrics
	Name() string
}

// FixedFallback always returns the same temperate reference sample
type FixedFallback struct{}

func NewFixedFallback() FixedFallback {
	return FixedFallback{}
}

func (FixedFallback) Sample() types.CanonicalMetrics {
	return types.CanonicalMetrics{
		TempMaxCelsius:     22.5,
		TempMinCelsius:     12.0,
		WindMaxKmh:         14.0,
		PrecipitationSumMm: 8.0,
		AvgHumidityPercent: 65.0,
	}
}

func (FixedFallback) Name() string { return "fixed" }

// RandomFallback generates a plausible sample spanning realistic physical
// ranges: temperature -10 to 70 °C, wind 4 to 40 km/h, precipitation 0 to
// 100 mm, humidity 30 to 95%.
type RandomFallback struct {
	rng *rand.Rand
}

// NewRandomFallback creates a seedable random strategy. A fixed seed makes
// the sequence reproducible in tests.
func NewRandomFallback(seed int64) *RandomFallback {
	return &RandomFallback{rng: rand.New(rand.NewSource(seed))}
}

func (f *RandomFallback) Sample() types.CanonicalMetrics {
	tempMax := -10 + f.rng.Float64()*80
	tempMin := tempMax - f.rng.Float64()*15

	return types.CanonicalMetrics{
		TempMaxCelsius:     tempMax,
		TempMinCelsius:     tempMin,
		WindMaxKmh:         4 + f.rng.Float64()*36,
		PrecipitationSumMm: f.rng.Float64() * 100,
		AvgHumidityPercent: 30 + f.rng.Float64()*65,
	}
}

func (*RandomFallback) Name() string { return "random" }
