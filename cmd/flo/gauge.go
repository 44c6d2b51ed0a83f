package main

import (
	"fmt"

	"github.com/gogpu/flo/gauge"
	"github.com/gogpu/flo/snapshot"
	"github.com/spf13/cobra"
)

var gaugeCmd = &cobra.Command{
	Use:     "gauge",
	Short:   "Render the counter gauge to a file",
	Example: `  flo gauge --counter 6 --capacity 8 -o today.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("counter") {
			cfg.Gauge.Counter, _ = flags.GetInt("counter")
		}
		if flags.Changed("capacity") {
			cfg.Gauge.Capacity, _ = flags.GetInt("capacity")
		}
		if flags.Changed("outline-color") {
			cfg.Gauge.OutlineColor, _ = flags.GetString("outline-color")
		}
		if flags.Changed("fill-color") {
			cfg.Gauge.FillColor, _ = flags.GetString("fill-color")
		}
		if flags.Changed("policy") {
			cfg.Gauge.CounterPolicy, _ = flags.GetString("policy")
		}
		applySize(cmd, &cfg.Gauge.Width, &cfg.Gauge.Height)

		in, policy, err := cfg.GaugeInput()
		if err != nil {
			return err
		}
		size := snapshot.Size{Width: cfg.Gauge.Width, Height: cfg.Gauge.Height}
		opt := gauge.WithCounterPolicy(policy)

		if trace, _ := flags.GetBool("trace"); trace {
			rec, err := snapshot.GaugeCommands(in, size, opt)
			if err != nil {
				return err
			}
			return printCommands(cmd.OutOrStdout(), rec)
		}

		out, _ := flags.GetString("output")
		f, err := outputFormat(out)
		if err != nil {
			return err
		}
		data, err := snapshot.Gauge(in, size, f, opt)
		if err != nil {
			return fmt.Errorf("rendering gauge: %w", err)
		}
		return writeFile(cmd.OutOrStdout(), out, data)
	},
}

func init() {
	gaugeCmd.Flags().Int("counter", 0, "glasses drunk so far")
	gaugeCmd.Flags().Int("capacity", 0, "daily goal")
	gaugeCmd.Flags().String("outline-color", "", "outline color")
	gaugeCmd.Flags().String("fill-color", "", "progress color")
	gaugeCmd.Flags().String("policy", "", "counter policy: unclamped, clamp, or strict")
	addImageFlags(gaugeCmd, "gauge.png")
}
