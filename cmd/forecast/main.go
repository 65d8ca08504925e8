// Command forecast runs the revenue forecaster over a JSON series file,
// emitting the result as JSON, an HTML chart, or monthly seasonal indices.
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/salespipe/forecaster"
	"github.com/salespipe/forecaster/seasonal"
	"github.com/salespipe/forecaster/timeseries"
)

var (
	flagAlpha   float64
	flagHorizon int
	flagOutput  string
	flagTitle   string
	flagProfile bool

	cpuProfile interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Monthly revenue forecasting",
	Long:  "Generate a smoothed revenue forecast with confidence band, trend, and reliability from a JSON series of {date, value} observations.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagProfile {
			cpuProfile = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cpuProfile != nil {
			cpuProfile.Stop()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [series.json]",
	Short: "Print the forecast as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := readSeries(args[0])
		if err != nil {
			return err
		}
		res, err := runForecast(series)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot [series.json]",
	Short: "Render the forecast as an HTML chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := readSeries(args[0])
		if err != nil {
			return err
		}
		res, err := runForecast(series)
		if err != nil {
			return err
		}
		file, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer file.Close()
		return forecaster.PlotForecast(file, flagTitle, series, res)
	},
}

var seasonalityCmd = &cobra.Command{
	Use:   "seasonality [series.json]",
	Short: "Print the 12 monthly seasonal indices as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		series, err := readSeries(args[0])
		if err != nil {
			return err
		}
		indices := seasonal.MonthlyIndices(series.Values())
		if len(indices) == 0 {
			return fmt.Errorf("need at least 12 observations for seasonality, got %d", len(series))
		}
		out, err := json.MarshalIndent(indices, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagAlpha, "alpha", "a", forecaster.DefaultAlpha, "Smoothing factor in (0, 1]")
	rootCmd.PersistentFlags().IntVarP(&flagHorizon, "horizon", "n", forecaster.DefaultHorizon, "Months to forecast")
	rootCmd.PersistentFlags().BoolVar(&flagProfile, "profile", false, "Write a CPU profile to the working directory")
	plotCmd.Flags().StringVarP(&flagOutput, "output", "o", "forecast.html", "Output HTML path")
	plotCmd.Flags().StringVarP(&flagTitle, "title", "t", "Revenue Forecast", "Chart title")
	rootCmd.AddCommand(runCmd, plotCmd, seasonalityCmd)
}

func readSeries(path string) (timeseries.Series, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var points timeseries.Series
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, fmt.Errorf("unable to parse series from %s, %w", path, err)
	}
	// revalidate through the constructor to enforce chronology
	return timeseries.New(points.Dates(), points.Values())
}

func runForecast(series timeseries.Series) (*forecaster.Results, error) {
	opt := forecaster.NewDefaultOptions()
	opt.Alpha = flagAlpha
	opt.Horizon = flagHorizon
	f, err := forecaster.New(opt)
	if err != nil {
		return nil, err
	}
	return f.Forecast(series), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
