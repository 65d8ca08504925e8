package forecaster

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/salespipe/forecaster/timeseries"
)

// LineForecast generates an echart line chart overlaying the historical
// values with the forecast and its confidence band. The forecast series
// are padded with echarts null markers over the historical range so they
// only render past the last observation.
func LineForecast(title string, history timeseries.Series, res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	x := make([]time.Time, 0, len(history)+len(res.Forecast))
	actual := make([]opts.LineData, 0, len(history))
	for _, p := range history {
		x = append(x, p.Date)
		actual = append(actual, opts.LineData{Value: p.Value})
	}

	gap := make([]opts.LineData, len(history))
	for i := range gap {
		gap[i] = opts.LineData{Value: "-"}
	}
	forecast := append(make([]opts.LineData, 0, len(x)+len(res.Forecast)), gap...)
	upper := append(make([]opts.LineData, 0, len(x)+len(res.Forecast)), gap...)
	lower := append(make([]opts.LineData, 0, len(x)+len(res.Forecast)), gap...)

	for i := range res.Forecast {
		x = append(x, res.Forecast[i].Date)
		forecast = append(forecast, opts.LineData{Value: res.Forecast[i].Value})
		upper = append(upper, opts.LineData{Value: res.Confidence.Upper[i].Value})
		lower = append(lower, opts.LineData{Value: res.Confidence.Lower[i].Value})
	}

	line.SetXAxis(x).
		AddSeries("Actual", actual).
		AddSeries("Forecast", forecast).
		AddSeries("Upper", upper).
		AddSeries("Lower", lower)
	return line
}

// PlotForecast renders the forecast chart as a standalone HTML page.
func PlotForecast(w io.Writer, title string, history timeseries.Series, res *Results) error {
	page := components.NewPage()
	page.AddCharts(
		LineForecast(title, history, res),
	)
	return page.Render(w)
}
