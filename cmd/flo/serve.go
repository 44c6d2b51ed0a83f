package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/flo"
	"github.com/gogpu/flo/service"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve render requests over NATS",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := cfg.Service.NATSURL
		if s := os.Getenv("FLO_NATS_URL"); s != "" {
			url = s
		}
		queue, _ := cmd.Flags().GetString("queue")

		nc, err := nats.Connect(url, natsOptions(url)...)
		if err != nil {
			return fmt.Errorf("connecting to NATS at %s: %w", url, err)
		}
		defer nc.Close()

		svc := service.New(nc, service.WithPrefix(cfg.Service.SubjectPrefix), service.WithQueue(queue))
		if err := svc.Start(); err != nil {
			return err
		}
		defer svc.Stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s and %s on %s\n", svc.ChartSubject(), svc.GaugeSubject(), url)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

func init() {
	serveCmd.Flags().String("queue", "", "queue group shared by service instances")
}

// natsOptions keeps reconnecting forever and reports connection changes
// through the flo logger.
func natsOptions(url string) []nats.Option {
	return []nats.Option{
		nats.Name("flo"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			flo.Logger().Warn("nats: disconnected", "url", url, "err", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			flo.Logger().Info("nats: reconnected", "url", url)
		}),
	}
}
