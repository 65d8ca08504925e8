package timeseries

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoData           = errors.New("no observations")
	ErrLenMismatch      = errors.New("dates have a different length than values")
	ErrNonChronological = errors.New("dates are not strictly ascending")
)

// Point is a single dated observation, e.g. revenue booked in one month.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is a chronologically ordered sequence of observations. Functions
// consuming a Series assume ascending dates; New enforces this.
type Series []Point

// New returns a Series from parallel date and value slices. Dates must be
// strictly ascending and of the same length as values.
func New(dates []time.Time, values []float64) (Series, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if len(dates) != len(values) {
		return nil, fmt.Errorf(
			"dates have length of %d, but values has a length of %d, %w",
			len(dates), len(values), ErrLenMismatch,
		)
	}

	var lastDate time.Time
	for i, d := range dates {
		if d.Before(lastDate) || d.Equal(lastDate) {
			return nil, fmt.Errorf("non-chronological at %d, %w", i, ErrNonChronological)
		}
		lastDate = d
	}

	s := make(Series, len(dates))
	for i := range dates {
		s[i] = Point{Date: dates[i], Value: values[i]}
	}
	return s, nil
}

// Values returns the observation values in series order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Dates returns the observation dates in series order.
func (s Series) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, p := range s {
		dates[i] = p.Date
	}
	return dates
}

func (s Series) Copy() Series {
	cp := make(Series, len(s))
	copy(cp, s)
	return cp
}
