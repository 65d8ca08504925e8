// Package smooth implements single-exponential smoothing for flat forward
// forecasts.
package smooth

// Exponential smooths data with factor alpha and returns a forecast of
// periods values, all held flat at the final smoothed value. The smoothed
// series is seeded with the first observation; each subsequent value is
// alpha*data[i] + (1-alpha)*smoothed[i-1]. Trend is not projected here.
// Empty data returns nil rather than an error.
func Exponential(data []float64, alpha float64, periods int) []float64 {
	if len(data) == 0 || periods <= 0 {
		return nil
	}

	smoothed := data[0]
	for _, v := range data[1:] {
		smoothed = alpha*v + (1-alpha)*smoothed
	}

	forecast := make([]float64, periods)
	for i := range forecast {
		forecast[i] = smoothed
	}
	return forecast
}
