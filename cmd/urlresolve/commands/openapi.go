package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rohanthewiz/urlresolve/internal/openapi"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var (
		format  string
		output  string
		title   string
		version string
	)

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Generate an OpenAPI document for the routes",
		Long: `Generate an OpenAPI 3 document with one GET operation per route.
Placeholders become path parameters and route names become operation IDs.

Examples:
  urlresolve openapi
  urlresolve openapi --format yaml --output routes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.load(cmd)
			if err != nil {
				return err
			}

			urls := table.URLs()
			doc := openapi.NewGenerator(openapi.Config{Title: title, Version: version}).
				Generate(urls.Routes(), urls.Prefix())

			if output == "" {
				return openapi.Write(cmd.OutOrStdout(), doc, format)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := openapi.Write(f, doc, format); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringVar(&version, "version", "", "Document version")
	return cmd
}
