package timeseries

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateMonths returns n consecutive first-of-month dates starting at the
// month containing start.
func GenerateMonths(start time.Time, n int) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, first.AddDate(0, i, 0))
	}
	return t
}

type Values []float64

func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

func GenerateConst(n int, val float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Values(y)
}

func GenerateTrend(n int, base, slope float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, base+slope*float64(i))
	}
	return Values(y)
}

// GenerateAnnualWave produces a sinusoid with a 12 month period, peaking a
// quarter period after each January position.
func GenerateAnnualWave(n int, amp float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, amp*math.Sin(2.0*math.Pi*float64(i)/12.0))
	}
	return Values(y)
}

func GenerateNoise(n int, scale float64) Values {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Values(y)
}
