package likelihood

import (
	"math"

	"paradecast/internal/types"
)

// Scoring constants. Each axis is a linear ramp that saturates at a fixed
// physical ceiling; MinPercent is the floor below which no score is reported.
const (
	// MinPercent models "nothing is ever truly impossible": a score of 0%
	// is never surfaced.
	MinPercent = 5

	hotSaturationCelsius  = 40.0 // tempMax at which veryHot hits 100
	coldReferenceCelsius  = 10.0 // tempMin at or above this scores the floor
	coldSaturationRange   = 20.0 // degrees between reference and saturation (-10)
	windSaturationKmh     = 30.0
	precipSaturationMm    = 50.0
	comfortSaturation     = 35.0 // adjusted temperature at which veryUncomfortable hits 100
	humidityCoefficient   = 0.55
	comfortPivotCelsius   = 14.5 // humidity correction pulls the apparent value toward this
)

// Score derives the five adverse-condition likelihood percentages from a
// canonical metrics record. It is pure and total: every input, including
// NaN, infinities, and out-of-range values, produces a valid result.
func Score(m types.CanonicalMetrics) types.LikelihoodResult {
	return types.LikelihoodResult{
		VeryHot:           clamp(m.TempMaxCelsius / hotSaturationCelsius * 100),
		VeryCold:          clamp((coldReferenceCelsius - m.TempMinCelsius) / coldSaturationRange * 100),
		VeryWindy:         clamp(m.WindMaxKmh / windSaturationKmh * 100),
		VeryWet:           clamp(m.PrecipitationSumMm / precipSaturationMm * 100),
		VeryUncomfortable: clamp(apparentTemperature(m.TempMaxCelsius, m.AvgHumidityPercent) / comfortSaturation * 100),
	}
}

// apparentTemperature blends tempMax with humidity into a simplified
// heat-index style discomfort temperature. At 100% humidity the correction
// vanishes and the apparent value equals tempMax; at 0% humidity the
// correction is maximal, pulling the value toward the pivot.
func apparentTemperature(tempMax, avgHumidity float64) float64 {
	return tempMax - humidityCoefficient*(1-avgHumidity/100)*(tempMax-comfortPivotCelsius)
}

// clamp caps a raw percentage at 100 first, then floors it at MinPercent,
// rounding half away from zero. NaN is absorbed to the floor so the engine
// has no error path.
func clamp(raw float64) int {
	if math.IsNaN(raw) {
		return MinPercent
	}
	capped := math.Round(math.Min(100, raw))
	if capped < MinPercent {
		return MinPercent
	}
	return int(capped)
}
