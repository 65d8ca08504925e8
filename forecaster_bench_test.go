package forecaster

import (
	"testing"
	"time"

	"github.com/pkg/profile"

	"github.com/salespipe/forecaster/timeseries"
)

var benchRes *Results

func BenchmarkForecast(b *testing.B) {
	start := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 120
	months := timeseries.GenerateMonths(start, n)
	revenue := timeseries.GenerateTrend(n, 100, 2).
		Add(timeseries.GenerateAnnualWave(n, 20)).
		Add(timeseries.GenerateNoise(n, 5))

	series, err := timeseries.New(months, revenue)
	if err != nil {
		b.Fatal(err)
	}
	f, err := New(nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchRes = f.Forecast(series)
	}
}
