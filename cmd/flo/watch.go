package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gogpu/flo/internal/config"
	"github.com/gogpu/flo/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render whenever the config file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		debounce, _ := cmd.Flags().GetDuration("debounce")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return watch.Run(ctx, configPath, debounce, func(ctx context.Context) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return renderAll(ctx, cmd.OutOrStdout(), c)
		})
	},
}

func init() {
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before re-rendering")
}
