package types

// PredictionRequest identifies the point and window a prediction is for.
// DiscomfortThreshold is a user-chosen reference temperature carried through
// to downstream consumers (e.g. the insight prompt); it does not feed the
// scoring formulas.
type PredictionRequest struct {
	Coordinates         Coords    `json:"coordinates"`
	Dates               DateRange `json:"dates"`
	DiscomfortThreshold float64   `json:"discomfort_threshold"`
}

// Validate checks the request fields that gate any computation
func (r PredictionRequest) Validate() error {
	if err := r.Coordinates.Validate(); err != nil {
		return err
	}
	if r.Dates.Start.IsZero() || r.Dates.End.IsZero() {
		return ErrMissingDate
	}
	return nil
}
