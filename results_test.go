package forecaster

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespipe/forecaster/timeseries"
)

func TestResultsJSON(t *testing.T) {
	apr := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	res := &Results{
		Forecast: []timeseries.Point{{Date: apr, Value: 108.1}},
		Confidence: ConfidenceBand{
			Upper: []timeseries.Point{{Date: apr, Value: 118.55}},
			Lower: []timeseries.Point{{Date: apr, Value: 97.65}},
		},
		Trend:       TrendUp,
		Reliability: ReliabilityLow,
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded Results
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *res, decoded)

	// enum fields serialize as their dashboard string values
	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Equal(t, "up", generic["trend"])
	assert.Equal(t, "low", generic["reliability"])
	assert.Contains(t, generic["confidence"], "upper")
	assert.Contains(t, generic["confidence"], "lower")
}
