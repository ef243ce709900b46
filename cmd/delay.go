package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/logtable"
	"github.com/edgesim/simreport/internal/series"
	"github.com/spf13/cobra"
)

var (
	flagDelayScenario string
	flagDelayTier     string
)

func newDelayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delay",
		Short: "Break service time into processing and network components",
		RunE:  runDelay,
	}
	cmd.Flags().StringVar(&flagDelayScenario, "scenario", "", "scenario name (default: first in config)")
	cmd.Flags().StringVar(&flagDelayTier, "tier", "edge", "execution tier (edge, cloud)")
	return cmd
}

func runDelay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	var edge bool
	switch flagDelayTier {
	case "edge":
		edge = true
	case "cloud":
		edge = false
	default:
		return fmt.Errorf("unknown tier %q (want edge or cloud)", flagDelayTier)
	}
	scenario := flagDelayScenario
	if scenario == "" {
		scenario = cfg.Scenarios[0].Name
	}

	src := &logtable.FileSource{Dir: cfg.ResultsDir, AppType: "ALL_APPS"}
	points, err := series.DelayBreakdown(cfg, src, scenario, edge)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICES\tPROCESSING (s)\tNETWORK (s)")
	fmt.Fprintln(tw, strings.Repeat("-", 40))
	for _, p := range points {
		if p.Missing {
			fmt.Fprintf(tw, "%d\t-\t-\n", p.Devices)
			continue
		}
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\n", p.Devices, p.Processing, p.Network)
	}
	return tw.Flush()
}
