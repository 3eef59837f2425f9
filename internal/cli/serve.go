package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archigen/archigen/internal/server"
)

const defaultServeAddr = ":8080"

// newServeCmd creates the serve command, which exposes the pipeline
// over HTTP until interrupted.
func newServeCmd(cfg *Config) *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram pipeline over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("addr") && cfg.Serve.Addr != "" {
				addr = cfg.Serve.Addr
			}

			runner := newRunner(ctx, cfg, noCache, logger)
			defer runner.Close()

			// Image endpoints work only when a PlantUML jar is around;
			// text and XML generation do not need one.
			if rast, err := newRasterizer(cfg); err == nil {
				runner.Rasterizer = rast
			} else {
				logger.Warn("no PlantUML jar found, image formats disabled", "err", err)
			}

			return server.New(runner, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}
