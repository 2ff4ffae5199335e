package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rohanthewiz/urlresolve/core/resolve"
	"github.com/rohanthewiz/urlresolve/internal/routes"
)

type resolveResult struct {
	Path   string              `json:"path"`
	View   string              `json:"view"`
	Name   string              `json:"name"`
	Params []resolve.Parameter `json:"params"`
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Find the view a path resolves to",
		Long: `Resolve a path against the route file and print the view, route name
and captured parameters. When nothing matches, every branch that was
tried is listed and the command exits non-zero.

Examples:
  urlresolve resolve /
  urlresolve resolve /users/42/
  urlresolve --json resolve /users/42/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			path := args[0]

			m, err := table.URLs().Resolve(path)
			if err != nil {
				if a.jsonOutput {
					printJSONError(out, err)
				}
				var nf *resolve.NotFound[routes.View]
				if errors.As(err, &nf) && !a.jsonOutput {
					fmt.Fprintf(out, "%s no match for %s\n", red("✗"), path)
					for _, attempt := range nf.Tried {
						fmt.Fprintf(out, "  %s tried %s\n", dim("-"), attempt)
					}
				}
				return err
			}

			if a.jsonOutput {
				printSuccess(out, resolveResult{Path: path, View: string(m.Handler), Name: m.Name, Params: m.Params()})
				return nil
			}

			params := make([]string, 0, len(m.Args))
			for _, p := range m.Params() {
				params = append(params, p.Key+"="+p.Value)
			}
			fmt.Fprintf(out, "%s %s\n", green("✓"), path)
			fmt.Fprintf(out, "  view:   %s\n", cyan(string(m.Handler)))
			fmt.Fprintf(out, "  name:   %s\n", m.Name)
			fmt.Fprintf(out, "  params: %s\n", strings.Join(params, " "))
			return nil
		},
	}
}
