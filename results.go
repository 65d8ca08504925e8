package forecaster

import "github.com/salespipe/forecaster/timeseries"

// Trend classifies the recent direction of a series from its trailing
// values.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Reliability is a coarse trustworthiness rating for a forecast derived
// from sample size and variability.
type Reliability string

const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// ConfidenceBand holds the upper and lower bound series around a forecast.
type ConfidenceBand struct {
	Upper []timeseries.Point `json:"upper"`
	Lower []timeseries.Point `json:"lower"`
}

// Results is the output of a single forecast call. Forecast, Upper, and
// Lower share the same dates and never contain negative values.
type Results struct {
	Forecast    []timeseries.Point `json:"forecast"`
	Confidence  ConfidenceBand     `json:"confidence"`
	Trend       Trend              `json:"trend"`
	Reliability Reliability        `json:"reliability"`
}
