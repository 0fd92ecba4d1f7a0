package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flashfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default gameplay rules as YAML",
	Long: `Print the default gameplay rules to stdout as a YAML document.

Redirect the output into a file to customize the rules. Rules are looked up
in this order:
  1. The path given with --config
  2. ~/.flashfall/configs/flashfall.yaml
  3. ./configs/flashfall.yaml
  4. The built-in defaults printed by this command

Examples:
  flashfall config
  mkdir -p ~/.flashfall/configs && flashfall config > ~/.flashfall/configs/flashfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
