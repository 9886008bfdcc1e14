package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsim"
)

var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Simulate button presses and report pulse counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		presses, _ := cmd.Flags().GetInt("presses")
		entry, _ := cmd.Flags().GetString("entry")
		limit, _ := cmd.Flags().GetInt("pulse-limit")
		forceYAML, _ := cmd.Flags().GetBool("yaml")

		mods, err := loadModules(args[0], forceYAML)
		if err != nil {
			return err
		}
		opts := []pulsim.Option{pulsim.WithEntry(entry)}
		if limit > 0 {
			opts = append(opts, pulsim.WithPulseLimit(limit))
		}
		n, err := pulsim.New(mods, opts...)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := n.Press(presses); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Printf("low:     %d\n", n.Low())
		fmt.Printf("high:    %d\n", n.High())
		fmt.Printf("product: %d\n", n.Product())
		fmt.Printf("elapsed: %s\n", elapsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntP("presses", "n", 1000, "number of button presses")
	runCmd.Flags().String("entry", pulsim.DefaultEntry, "entry-point module name")
	runCmd.Flags().Int("pulse-limit", 0, "abort a press after this many pulses (0 = no limit)")
	runCmd.Flags().Bool("yaml", false, "force the YAML definition format")
}
