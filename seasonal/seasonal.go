// Package seasonal estimates monthly seasonal indices using the ratio to a
// centered moving average.
package seasonal

import "gonum.org/v1/gonum/stat"

const (
	monthsPerYear = 12

	// centered window of +/-6 months around each point
	halfWindow = 6
)

// MonthlyIndices computes 12 seasonal multipliers from a monthly value
// sequence. Each interior point is divided by its centered 13 point moving
// average and the ratios are averaged per month position (index mod 12).
// Month positions with no ratio default to a neutral index of 1. Returns
// nil when fewer than 12 values are supplied. Windows summing to zero are
// out of contract and produce non-finite ratios.
func MonthlyIndices(values []float64) []float64 {
	if len(values) < monthsPerYear {
		return nil
	}

	ratioSums := make([]float64, monthsPerYear)
	ratioCounts := make([]int, monthsPerYear)
	for i := halfWindow; i <= len(values)-halfWindow-1; i++ {
		movingAvg := stat.Mean(values[i-halfWindow:i+halfWindow+1], nil)
		pos := i % monthsPerYear
		ratioSums[pos] += values[i] / movingAvg
		ratioCounts[pos]++
	}

	indices := make([]float64, monthsPerYear)
	for pos := range indices {
		if ratioCounts[pos] == 0 {
			indices[pos] = 1.0
			continue
		}
		indices[pos] = ratioSums[pos] / float64(ratioCounts[pos])
	}
	return indices
}
