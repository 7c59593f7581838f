package types

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for start/end dates
const DateLayout = "2006-01-02"

var (
	ErrMissingDate       = errors.New("start and end date are required")
	ErrEndBeforeStart    = errors.New("end date must not be before start date")
	ErrInvalidDateFormat = errors.New("dates must use YYYY-MM-DD format")
)

// DateRange is the inclusive window a prediction is requested for
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// NewDateRange parses and validates a start/end date pair
func NewDateRange(start, end string) (DateRange, error) {
	if start == "" || end == "" {
		return DateRange{}, ErrMissingDate
	}

	startTime, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, start)
	}

	endTime, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, end)
	}

	if endTime.Before(startTime) {
		return DateRange{}, ErrEndBeforeStart
	}

	return DateRange{Start: startTime, End: endTime}, nil
}

// Days returns the number of days covered by the range, inclusive
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}
