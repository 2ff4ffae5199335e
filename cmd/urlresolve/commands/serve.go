package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/rohanthewiz/urlresolve/internal/inspect"
	"github.com/rohanthewiz/urlresolve/internal/routes"
	"github.com/rohanthewiz/urlresolve/internal/telemetry"
	"github.com/rohanthewiz/urlresolve/internal/watch"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the route inspector HTTP server",
		Long: `Serve an HTTP API over the route file:

  GET /resolve?path=/users/42/
  GET /reverse/{name}?arg=42
  GET /routes
  GET /openapi.json
  GET /metrics

With --watch the route file is reloaded when it changes; a file that fails
to load leaves the current routes in place.

Examples:
  urlresolve serve
  urlresolve serve --listen :9090 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := telemetry.NewMetrics(
				telemetry.WithRegistry(reg),
				telemetry.WithNamespace(a.cfg.MetricsNamespace),
			)

			table, err := a.table(ctx)
			metrics.ObserveReload(err, routeCount(table))
			if err != nil {
				return err
			}

			if a.cfg.Watch {
				if err := a.watch(ctx, table, metrics); err != nil {
					return err
				}
			}

			urls := telemetry.Instrument[routes.View](table, metrics, telemetry.WithTracerName(a.cfg.TracingName))
			handler := inspect.NewRouter(urls, inspect.Config{
				Title:    "Routes: " + table.Source(),
				Logger:   a.logger,
				Gatherer: reg,
			})

			return inspect.Serve(ctx, a.cfg.Listen, handler, a.logger)
		},
	}

	cmd.Flags().String("listen", "", "Address to listen on (default :8080)")
	cmd.Flags().Bool("watch", false, "Reload the route file when it changes")
	return cmd
}

// watch starts reloading table on changes to its file. S3 sources are not
// watched.
func (a *app) watch(ctx context.Context, table *routes.Table, metrics *telemetry.Metrics) error {
	if routes.IsS3(table.Source()) {
		a.logger.Warn("--watch ignored for s3 route source", "source", table.Source())
		return nil
	}

	w, err := watch.New(table.Source(), table, watch.Options{
		Logger: a.logger,
		OnReload: func(err error) {
			metrics.ObserveReload(err, routeCount(table))
		},
	})
	if err != nil {
		return err
	}

	go func() {
		defer w.Close()
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("watcher stopped", "error", err)
		}
	}()
	return nil
}

func routeCount(table *routes.Table) int {
	if table == nil {
		return 0
	}
	return len(table.URLs().Routes())
}
