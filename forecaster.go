// Package forecaster produces monthly revenue forecasts with a confidence
// band, a trend classification, and a qualitative reliability rating. It
// is a pure computation layer: callers supply the historical series and
// render the result elsewhere.
package forecaster

import (
	"errors"
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/salespipe/forecaster/smooth"
	"github.com/salespipe/forecaster/stats"
	"github.com/salespipe/forecaster/timeseries"
)

var (
	ErrInvalidAlpha       = errors.New("smoothing factor must be in (0, 1]")
	ErrNegativeHorizon    = errors.New("forecast horizon must not be negative")
	ErrNegativeConfidence = errors.New("confidence z-score must not be negative")
)

const (
	// MinObservations is the fewest historical points a forecast can be
	// produced from. Shorter series yield the degenerate result.
	MinObservations = 2

	trendWindow = 3

	minReliabilityObs  = 6
	highReliabilityObs = 12
	highVariationLimit = 0.5
	lowVariationLimit  = 0.2

	workdayBaselineMonths = 12
)

// Forecaster generates forecasts from a monthly series. It is stateless
// after construction and safe for concurrent use.
type Forecaster struct {
	opt *Options
}

// New creates a Forecaster using the provided options. If no options are
// provided a default is used. Only configuration is validated here; data
// shape never produces an error.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.Alpha <= 0.0 || opt.Alpha > 1.0 {
		return nil, fmt.Errorf("alpha of %.3f, %w", opt.Alpha, ErrInvalidAlpha)
	}
	if opt.Horizon < 0 {
		return nil, fmt.Errorf("horizon of %d, %w", opt.Horizon, ErrNegativeHorizon)
	}
	if opt.ConfidenceZ < 0.0 {
		return nil, fmt.Errorf("z-score of %.3f, %w", opt.ConfidenceZ, ErrNegativeConfidence)
	}
	return &Forecaster{opt: opt}, nil
}

// Forecast runs a forecast over series with the default options and the
// given horizon in months.
func Forecast(series timeseries.Series, horizon int) (*Results, error) {
	opt := NewDefaultOptions()
	opt.Horizon = horizon
	f, err := New(opt)
	if err != nil {
		return nil, err
	}
	return f.Forecast(series), nil
}

// Forecast generates forecast, upper, and lower values for the configured
// horizon along with trend and reliability classifications. The input is
// never mutated and identical input yields identical output. A series
// shorter than MinObservations degrades to empty forecast slices with a
// neutral trend and low reliability rather than an error.
func (f *Forecaster) Forecast(series timeseries.Series) *Results {
	res := &Results{
		Forecast: []timeseries.Point{},
		Confidence: ConfidenceBand{
			Upper: []timeseries.Point{},
			Lower: []timeseries.Point{},
		},
		Trend:       TrendNeutral,
		Reliability: ReliabilityLow,
	}
	if len(series) < MinObservations {
		return res
	}

	values := series.Values()
	res.Trend = classifyTrend(values)
	res.Reliability = classifyReliability(values)

	flat := smooth.Exponential(values, f.opt.Alpha, f.opt.Horizon)
	band := f.opt.ConfidenceZ * stats.PopStdDev(values)

	res.Forecast = make([]timeseries.Point, len(flat))
	res.Confidence.Upper = make([]timeseries.Point, len(flat))
	res.Confidence.Lower = make([]timeseries.Point, len(flat))

	last := series[len(series)-1].Date
	baseline := f.workdayBaseline(series)
	for i, v := range flat {
		// each offset is applied to the last historical date independently
		// so month-end overflow does not compound across the horizon
		date := last.AddDate(0, i+1, 0)
		v *= f.workdayFactor(date, baseline)
		res.Forecast[i] = timeseries.Point{Date: date, Value: clampZero(v)}
		res.Confidence.Upper[i] = timeseries.Point{Date: date, Value: clampZero(v + band)}
		res.Confidence.Lower[i] = timeseries.Point{Date: date, Value: clampZero(v - band)}
	}
	return res
}

// classifyTrend compares the last value against the start of the trailing
// window of up to 3 values. This is a coarse heuristic, not a regression.
func classifyTrend(values []float64) Trend {
	window := trendWindow
	if len(values) < window {
		window = len(values)
	}
	first := values[len(values)-window]
	last := values[len(values)-1]
	switch {
	case last > first:
		return TrendUp
	case last < first:
		return TrendDown
	}
	return TrendNeutral
}

// classifyReliability rates the forecast from sample size and coefficient
// of variation. Fewer than 6 points is always low; a zero-mean series
// divides to +Inf and lands in the high-variation branch.
func classifyReliability(values []float64) Reliability {
	n := len(values)
	if n < minReliabilityObs {
		return ReliabilityLow
	}
	cv := stats.CoefficientOfVariation(values)
	switch {
	case cv > highVariationLimit:
		return ReliabilityLow
	case n >= highReliabilityObs && cv < lowVariationLimit:
		return ReliabilityHigh
	}
	return ReliabilityMedium
}

// workdayBaseline returns the mean business day count over the trailing
// year of historical months, or 0 when no calendar is configured.
func (f *Forecaster) workdayBaseline(series timeseries.Series) float64 {
	if f.opt.WorkdayCalendar == nil {
		return 0
	}
	months := workdayBaselineMonths
	if len(series) < months {
		months = len(series)
	}
	var total int
	for _, p := range series[len(series)-months:] {
		total += monthWorkdays(f.opt.WorkdayCalendar, p.Date)
	}
	return float64(total) / float64(months)
}

func (f *Forecaster) workdayFactor(date time.Time, baseline float64) float64 {
	if f.opt.WorkdayCalendar == nil || baseline == 0 {
		return 1.0
	}
	return float64(monthWorkdays(f.opt.WorkdayCalendar, date)) / baseline
}

func monthWorkdays(c *cal.BusinessCalendar, date time.Time) int {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 1, 0)
	var n int
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkday(d) {
			n++
		}
	}
	return n
}

func clampZero(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	return v
}
