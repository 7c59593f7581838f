package types

import "errors"

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks that the coordinates fall inside the valid geographic range
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}
