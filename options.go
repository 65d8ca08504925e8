package forecaster

import "github.com/rickar/cal/v2"

const (
	DefaultAlpha       = 0.3
	DefaultHorizon     = 3
	DefaultConfidenceZ = 1.28
)

// Options configures a Forecaster. The zero value is not usable; start
// from NewDefaultOptions and override fields as needed.
type Options struct {
	// Alpha is the exponential smoothing factor in (0, 1]. Larger values
	// weigh recent observations more heavily.
	Alpha float64

	// Horizon is the number of future months to forecast.
	Horizon int

	// ConfidenceZ scales the population standard deviation of the history
	// to form the confidence band. The default of 1.28 approximates an
	// 80% two-sided interval under a normality assumption.
	ConfidenceZ float64

	// WorkdayCalendar optionally scales each forecast month by its
	// business day count relative to the trailing year average. Leave nil
	// to forecast calendar months as-is.
	WorkdayCalendar *cal.BusinessCalendar
}

// NewDefaultOptions returns the options used by the dashboard: alpha 0.3,
// a 3 month horizon, and an 80% confidence band.
func NewDefaultOptions() *Options {
	return &Options{
		Alpha:       DefaultAlpha,
		Horizon:     DefaultHorizon,
		ConfidenceZ: DefaultConfidenceZ,
	}
}
