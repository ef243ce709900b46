package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simreport",
		Short: "Post-process repeated-trial simulation results into plots and datasets",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "simreport.yaml", "config file path")
	root.AddCommand(newSeriesCmd())
	root.AddCommand(newDelayCmd())
	root.AddCommand(newDatasetCmd())
	root.AddCommand(newListCmd())
	return root
}
