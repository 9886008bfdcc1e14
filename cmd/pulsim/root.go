package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsim"
)

var rootCmd = &cobra.Command{
	Use:   "pulsim",
	Short: "pulsim simulates pulse-propagation module networks",
	Long: `pulsim loads a module network definition and simulates button presses:
discrete Low/High pulses propagating through broadcaster, flip-flop and
conjunction modules in strict FIFO order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadModules reads and parses a network definition file. YAML is selected by
// flag or by a .yaml/.yml extension.
func loadModules(path string, forceYAML bool) ([]pulsim.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if forceYAML || strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return pulsim.ParseNetworkYAML(data)
	}
	return pulsim.ParseNetwork(string(data))
}
