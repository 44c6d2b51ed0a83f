package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gogpu/flo/gauge"
	"github.com/gogpu/flo/internal/config"
	"github.com/gogpu/flo/sink"
	"github.com/gogpu/flo/snapshot"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render both widgets from the config into the output target",
	Long: `Render the chart and the gauge as configured and write them to
[output] target, which is a directory or an s3://bucket/prefix URI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderAll(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

// renderAll writes chart.<ext> and gauge.<ext> into the configured target.
func renderAll(ctx context.Context, w io.Writer, c config.Config) error {
	f, err := c.Format()
	if err != nil {
		return err
	}
	out, err := sink.Open(ctx, c.Output.Target, sink.Options{
		Region:   c.Output.Region,
		Endpoint: c.Output.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("opening output %q: %w", c.Output.Target, err)
	}

	chartIn, err := c.ChartInput()
	if err != nil {
		return err
	}
	chartOpts, err := c.ChartOptions()
	if err != nil {
		return err
	}
	chartData, err := snapshot.Chart(chartIn, snapshot.Size{Width: c.Chart.Width, Height: c.Chart.Height}, f, chartOpts...)
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	if err := out.Write(ctx, "chart"+f.Ext(), chartData, f.ContentType()); err != nil {
		return err
	}

	gaugeIn, policy, err := c.GaugeInput()
	if err != nil {
		return err
	}
	gaugeData, err := snapshot.Gauge(gaugeIn, snapshot.Size{Width: c.Gauge.Width, Height: c.Gauge.Height}, f, gauge.WithCounterPolicy(policy))
	if err != nil {
		return fmt.Errorf("rendering gauge: %w", err)
	}
	if err := out.Write(ctx, "gauge"+f.Ext(), gaugeData, f.ContentType()); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Rendered chart and gauge to %s\n", c.Output.Target)
	return err
}
