package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsim"
)

var graphCmd = &cobra.Command{
	Use:   "graph <input>",
	Short: "Print the module graph in DOT format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forceYAML, _ := cmd.Flags().GetBool("yaml")
		mods, err := loadModules(args[0], forceYAML)
		if err != nil {
			return err
		}
		fmt.Println("digraph pulsim {")
		for _, m := range mods {
			fmt.Printf("\t%q [shape=%s];\n", m.Label(), shape(m))
			for _, d := range m.Dests() {
				fmt.Printf("\t%q -> %q;\n", m.Label(), d)
			}
		}
		fmt.Println("}")
		return nil
	},
}

func shape(m pulsim.Module) string {
	switch m.(type) {
	case *pulsim.FlipFlop:
		return "box"
	case *pulsim.Conjunction:
		return "diamond"
	default:
		return "ellipse"
	}
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("yaml", false, "force the YAML definition format")
}
