// Package commands provides the urlresolve CLI.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rohanthewiz/urlresolve"
	"github.com/rohanthewiz/urlresolve/internal/config"
	"github.com/rohanthewiz/urlresolve/internal/routes"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	jsonOutput bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "urlresolve",
		Short: "Resolve URL paths against a route file, and route names back to paths",
		Long: `urlresolve loads a YAML route file (from disk or s3://bucket/key) and
resolves paths with it, in either direction.

Routes are tried in the order they are declared and the first match wins.
When two routes share a name, reversing uses the one declared first.

Examples:
  urlresolve resolve /users/42/
  urlresolve reverse user 42
  urlresolve routes --tree
  urlresolve openapi --format yaml
  urlresolve serve --listen :8080 --watch`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default ./urlresolve.yaml)")
	flags.String("routes", "", "Route file path or s3://bucket/key (default routes.yaml)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		newResolveCmd(a),
		newReverseCmd(a),
		newRoutesCmd(a),
		newOpenAPICmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}

// setup loads the configuration for cmd and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

// table loads the configured route source.
func (a *app) table(ctx context.Context) (*routes.Table, error) {
	loader := &routes.Loader{}
	if routes.IsS3(a.cfg.Routes) {
		loader.S3 = routes.NewS3Client(a.cfg.S3Region)
	}

	opts := []urlresolve.Option{urlresolve.WithPrefix(a.cfg.Prefix)}
	if a.cfg.Root != "" {
		opts = append(opts, urlresolve.WithRoot(a.cfg.Root))
	}
	return routes.NewTable(ctx, a.cfg.Routes, loader, a.logger, opts...)
}

// load is setup followed by table.
func (a *app) load(cmd *cobra.Command) (*routes.Table, error) {
	if err := a.setup(cmd); err != nil {
		return nil, err
	}
	return a.table(cmd.Context())
}
