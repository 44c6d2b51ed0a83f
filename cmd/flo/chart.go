package main

import (
	"fmt"

	"github.com/gogpu/flo/snapshot"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the line chart to a file",
	Example: `  flo chart --points 4,2,6,4,5,8,3 -o week.png
  flo chart --labels --trace`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("points") {
			cfg.Chart.Points, _ = flags.GetIntSlice("points")
		}
		if flags.Changed("start-color") {
			cfg.Chart.StartColor, _ = flags.GetString("start-color")
		}
		if flags.Changed("end-color") {
			cfg.Chart.EndColor, _ = flags.GetString("end-color")
		}
		if flags.Changed("labels") {
			cfg.Chart.Labels, _ = flags.GetBool("labels")
		}
		applySize(cmd, &cfg.Chart.Width, &cfg.Chart.Height)

		in, err := cfg.ChartInput()
		if err != nil {
			return err
		}
		opts, err := cfg.ChartOptions()
		if err != nil {
			return err
		}
		size := snapshot.Size{Width: cfg.Chart.Width, Height: cfg.Chart.Height}

		if trace, _ := flags.GetBool("trace"); trace {
			rec, err := snapshot.ChartCommands(in, size, opts...)
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
		data, err := snapshot.Chart(in, size, f, opts...)
		if err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		return writeFile(cmd.OutOrStdout(), out, data)
	},
}

func init() {
	chartCmd.Flags().IntSlice("points", nil, "comma-separated daily samples")
	chartCmd.Flags().String("start-color", "", "background gradient top color")
	chartCmd.Flags().String("end-color", "", "background gradient bottom color")
	chartCmd.Flags().Bool("labels", false, "draw title, average, and guide labels")
	addImageFlags(chartCmd, "chart.png")
}
