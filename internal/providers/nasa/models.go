package nasa

import "time"

// NLDAS-2 hourly variables served by the Data Rods service
const (
	VariablePrecipitation  = "NLDAS2:NLDAS_FORA0125_H_v2.0:Rainf"  // mm/hr
	VariableAirTemperature = "NLDAS2:NLDAS_FORA0125_H_v2.0:Tair"   // Kelvin
	VariableWindSpeed      = "NLDAS2:NLDAS_FORA0125_H_v2.0:Wind_E" // m/s
)

// missingValue is the sentinel Data Rods uses for gaps in a series
const missingValue = -9999.0

// Point is a single timestamped observation from a time series
type Point struct {
	Time  time.Time
	Value float64
}

// TimeSeries is the parsed form of one Data Rods ASCII response
type TimeSeries struct {
	Parameters map[string]string
	Points     []Point
}

// DailySummary aggregates the three hourly series for one calendar day,
// in the raw upstream units (Kelvin, m/s, mm).
type DailySummary struct {
	Date        time.Time
	TairMax     float64
	TairMin     float64
	WindMax     float64
	RainfSum    float64
	SampleCount int
}
