package seasonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyIndicesTooShort(t *testing.T) {
	testData := map[string][]float64{
		"nil input":     nil,
		"empty input":   {},
		"eleven months": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}

	for name, values := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, MonthlyIndices(values))
		})
	}
}

func TestMonthlyIndicesConstant(t *testing.T) {
	values := make([]float64, 24)
	for i := range values {
		values[i] = 50
	}

	indices := MonthlyIndices(values)
	require.Len(t, indices, 12)
	for i, idx := range indices {
		assert.InDeltaf(t, 1.0, idx, 1e-12, "month position %d", i)
	}
}

func TestMonthlyIndicesDefaultsWithoutWindow(t *testing.T) {
	// 12 values leave no room for a centered 13 point window, so every
	// month position falls back to the neutral index.
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}

	indices := MonthlyIndices(values)
	require.Len(t, indices, 12)
	for i, idx := range indices {
		assert.InDeltaf(t, 1.0, idx, 1e-12, "month position %d", i)
	}
}

func TestMonthlyIndicesSingleWindow(t *testing.T) {
	// 13 values produce exactly one ratio at index 6; the moving average
	// over the full window is 1310/13.
	values := make([]float64, 13)
	for i := range values {
		values[i] = 100
	}
	values[6] = 110

	indices := MonthlyIndices(values)
	require.Len(t, indices, 12)
	for i, idx := range indices {
		if i == 6 {
			assert.InDelta(t, 110.0*13.0/1310.0, idx, 1e-12)
			continue
		}
		assert.InDeltaf(t, 1.0, idx, 1e-12, "month position %d", i)
	}
}
