package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	testData := map[string]struct {
		values   []float64
		expected float64
	}{
		"single element": {
			[]float64{5},
			5,
		},
		"multiple elements": {
			[]float64{1, 2, 3},
			2,
		},
		"negative values": {
			[]float64{-2, 2, -4, 4},
			0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, td.expected, Mean(td.values), 1e-12)
		})
	}
}

func TestPopStdDev(t *testing.T) {
	testData := map[string]struct {
		values   []float64
		expected float64
	}{
		"constant series": {
			[]float64{50, 50, 50, 50},
			0,
		},
		"known population": {
			// mean 5, squared deviations sum to 32, n=8
			[]float64{2, 4, 4, 4, 5, 5, 7, 9},
			2,
		},
		"two points": {
			[]float64{0, 10},
			5,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			got := PopStdDev(td.values)
			assert.InDelta(t, td.expected, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	testData := map[string]struct {
		values   []float64
		expected float64
	}{
		"constant series": {
			[]float64{100, 100, 100},
			0,
		},
		"known population": {
			[]float64{2, 4, 4, 4, 5, 5, 7, 9},
			0.4,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, td.expected, CoefficientOfVariation(td.values), 1e-12)
		})
	}

	t.Run("zero mean diverges", func(t *testing.T) {
		assert.True(t, math.IsInf(CoefficientOfVariation([]float64{-1, 1, -1, 1}), 1))
	})
}
