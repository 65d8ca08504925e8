package stats

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of values. Callers must not pass an
// empty slice; the result is NaN in that case.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// PopStdDev returns the population standard deviation of values, i.e. the
// square root of the mean squared deviation from the mean with no Bessel
// correction.
func PopStdDev(values []float64) float64 {
	return stat.PopStdDev(values, nil)
}

// CoefficientOfVariation returns the population standard deviation divided
// by the mean, a scale-free measure of variability. A zero mean yields an
// infinite result under IEEE division.
func CoefficientOfVariation(values []float64) float64 {
	return PopStdDev(values) / Mean(values)
}
