package cmd

import (
	"fmt"

	"github.com/edgesim/simreport/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured scenarios and catalog metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Results: %s (%d iterations, %d-%d devices step %d)\n\n",
				cfg.ResultsDir, cfg.Iterations, cfg.Devices.Min, cfg.Devices.Max, cfg.Devices.Step)
			fmt.Println("Scenarios:")
			for _, s := range cfg.Scenarios {
				fmt.Printf("  - %s (legend: %s)\n", s.Name, s.Legend)
			}
			fmt.Println("\nMetrics:")
			for _, m := range cfg.Metrics {
				extra := ""
				if m.PercentageOfAll {
					extra = ", % of all tasks"
				}
				if m.Divisor != 1 {
					extra += fmt.Sprintf(", divisor %g", m.Divisor)
				}
				fmt.Printf("  - %s [%s] row %d col %d%s\n", m.Name, m.AppType, m.Row, m.Col, extra)
			}
			return nil
		},
	}
}
