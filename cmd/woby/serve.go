package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/woby-dev/woby/internal/demo"
	"github.com/woby-dev/woby/pkg/devserver"
	"github.com/woby-dev/woby/pkg/element"
	"github.com/woby-dev/woby/pkg/observe"
)

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development server",
		Long: `Serve the demo application with live updates.

Every browser tab gets its own session over a WebSocket; clicks are
handled on the server and the changed nodes are streamed back.

Examples:
  woby serve
  woby serve --addr :8080
  WOBY_ADDR=0.0.0.0:3000 woby serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				if err := cfg.SetAddress(addr); err != nil {
					return err
				}
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			srvCfg := devserver.Config{
				Addr:           cfg.DevAddress(),
				Title:          "woby",
				Logger:         logger,
				RuntimeOptions: runtimeOptions(cfg, logger),
			}
			elementOpts := []element.Option{element.WithLogger(logger)}

			if cfg.Metrics.Enabled {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				metrics := observe.NewPrometheus(
					observe.WithNamespace(cfg.Metrics.Namespace),
					observe.WithRegistry(reg),
				)
				srvCfg.Metrics = metrics
				srvCfg.Gatherer = reg
				elementOpts = append(elementOpts, element.OnDecodeError(metrics.DecodeFailed))
			}
			if cfg.Tracing.Enabled {
				srvCfg.Observer = observe.NewTracer(observe.WithTracerName(cfg.Tracing.TracerName))
			}
			srvCfg.App = demo.App(elementOpts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("serving", "url", cfg.DevURL())
			return devserver.New(srvCfg).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address host:port (default from woby.yaml)")

	return cmd
}
