package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/edgesim/simreport/internal/arff"
	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	flagTarget string
	flagMethod string
	flagSplit  string
	flagSeed   int64
)

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build a balanced, normalized ARFF dataset from learner output files",
		RunE:  runDataset,
	}
	cmd.Flags().StringVar(&flagTarget, "target", "", "decision target (edge, cloud_rsu, cloud_gsm)")
	cmd.Flags().StringVar(&flagMethod, "method", "", "column set (classifier, regression)")
	cmd.Flags().StringVar(&flagSplit, "split", "", "iteration split (train, test)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "sampling seed (0 uses the config seed, or the clock)")
	return cmd
}

func runDataset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	target, err := dataset.ParseTarget(flagTarget)
	if err != nil {
		return err
	}
	method, err := dataset.ParseMethod(flagMethod)
	if err != nil {
		return err
	}
	split, err := dataset.ParseSplit(flagSplit)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = cfg.Dataset.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	records, err := dataset.ReadSplit(cfg, target, split)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d %s records for %s\n", len(records), split, target)

	columns := dataset.Columns(target, method)

	// Normalization constants have to be reproduced at inference time,
	// so they are reported in original units for the train split.
	if split == dataset.SplitTrain {
		fmt.Printf("\nStats for %s - %s (original units):\n", target, method)
		if err := dataset.WriteDescribe(os.Stdout, dataset.Describe(records, columns)); err != nil {
			return err
		}
		fmt.Println()
	}

	if method == dataset.MethodClassifier {
		records, err = dataset.BalanceClasses(records, cfg.Devices.Max, rng)
	} else {
		records, err = dataset.BalanceSuccessOnly(records, cfg.Devices.Max, rng)
	}
	if err != nil {
		return err
	}
	if err := dataset.Normalize(records, columns); err != nil {
		return err
	}

	path := filepath.Join(cfg.ResultsDir, fmt.Sprintf("%s_%s_%s.arff", target, method, split))
	if err := writeArtifact(path, func(f *os.File) error {
		return arff.Write(f, string(target), columns, records)
	}); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d records, seed %d)\n", path, len(records), seed)
	return nil
}
