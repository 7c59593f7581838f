package openmeteo

// DailyForecastResponse is the Open-Meteo daily forecast payload, limited to
// the variables this service requests. Each slice is indexed by day.
type DailyForecastResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Timezone         string  `json:"timezone"`
	TimezoneAbbr     string  `json:"timezone_abbreviation"`
	ElevationMeters  float64 `json:"elevation"`
	DailyUnits       Units   `json:"daily_units"`
	Daily            Daily   `json:"daily"`
}

type Units struct {
	Temperature2mMax       string `json:"temperature_2m_max"`
	Temperature2mMin       string `json:"temperature_2m_min"`
	WindSpeed10mMax        string `json:"wind_speed_10m_max"`
	PrecipitationSum       string `json:"precipitation_sum"`
	RelativeHumidity2mMean string `json:"relative_humidity_2m_mean"`
}

type Daily struct {
	Time                   []string  `json:"time"`
	Temperature2mMax       []float64 `json:"temperature_2m_max"`
	Temperature2mMin       []float64 `json:"temperature_2m_min"`
	WindSpeed10mMax        []float64 `json:"wind_speed_10m_max"`
	PrecipitationSum       []float64 `json:"precipitation_sum"`
	RelativeHumidity2mMean []float64 `json:"relative_humidity_2m_mean"`
}

// Days returns the number of days present across all requested variables
func (d Daily) Days() int {
	n := len(d.Time)
	for _, l := range []int{
		len(d.Temperature2mMax),
		len(d.Temperature2mMin),
		len(d.WindSpeed10mMax),
		len(d.PrecipitationSum),
		len(d.RelativeHumidity2mMean),
	} {
		if l < n {
			n = l
		}
	}
	return n
}
