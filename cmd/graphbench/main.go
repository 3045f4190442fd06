package main

import (
	"os"

	"github.com/armadaproject/graphbench/cmd/graphbench/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
