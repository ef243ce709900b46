package main

import (
	"os"

	"github.com/edgesim/simreport/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
