// Command flo renders the Flo water-tracking widgets to image files,
// object storage, or NATS requesters.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/internal/config"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "flo <command>",
	Short:         "Render the Flo chart and gauge widgets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			flo.SetLogger(l)
			gg.SetLogger(l)
		}
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "flo.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(chartCmd, gaugeCmd, renderCmd, watchCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
