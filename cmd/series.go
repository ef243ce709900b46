package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/logtable"
	"github.com/edgesim/simreport/internal/plot"
	"github.com/edgesim/simreport/internal/series"
	"github.com/spf13/cobra"
)

var (
	flagMetric string
	flagAll    bool
	flagFormat string
	flagOutDir string
	flagPNG    bool
)

func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Aggregate a metric across iterations with confidence margins",
		RunE:  runSeries,
	}
	cmd.Flags().StringVar(&flagMetric, "metric", "", "metric name from the catalog")
	cmd.Flags().BoolVar(&flagAll, "all", false, "process every metric in the catalog")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, json, csv)")
	cmd.Flags().StringVar(&flagOutDir, "out", "", "write artifacts to this directory instead of stdout")
	cmd.Flags().BoolVar(&flagPNG, "png", false, "also render a PNG chart (requires --out)")
	return cmd
}

func runSeries(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	metrics, err := selectMetrics(cfg, flagMetric, flagAll)
	if err != nil {
		return err
	}
	if flagPNG && flagOutDir == "" {
		return fmt.Errorf("--png requires --out")
	}

	for _, m := range metrics {
		src := &logtable.FileSource{Dir: cfg.ResultsDir, AppType: m.AppType}
		s := series.Build(cfg, m, src)

		if flagOutDir == "" {
			if len(metrics) > 1 {
				fmt.Printf("--- %s ---\n", m.Name)
			}
			if err := series.Write(s, flagFormat, os.Stdout); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(flagOutDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		ext := flagFormat
		if ext == "table" {
			ext = "txt"
		}
		path := filepath.Join(flagOutDir, fmt.Sprintf("%s_series.%s", m.Name, ext))
		if err := writeArtifact(path, func(f *os.File) error {
			return series.Write(s, flagFormat, f)
		}); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)

		if flagPNG {
			pngPath := filepath.Join(flagOutDir, m.Name+".png")
			if err := writeArtifact(pngPath, func(f *os.File) error {
				return plot.Render(s, cfg.Plot, f)
			}); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", pngPath)
		}
	}
	return nil
}

func selectMetrics(cfg *config.Config, name string, all bool) ([]*config.Metric, error) {
	if all {
		if len(cfg.Metrics) == 0 {
			return nil, fmt.Errorf("no metrics in catalog")
		}
		metrics := make([]*config.Metric, len(cfg.Metrics))
		for i := range cfg.Metrics {
			metrics[i] = &cfg.Metrics[i]
		}
		return metrics, nil
	}
	if name == "" {
		return nil, fmt.Errorf("either --metric or --all is required")
	}
	m, err := cfg.Metric(name)
	if err != nil {
		return nil, err
	}
	return []*config.Metric{m}, nil
}

func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
