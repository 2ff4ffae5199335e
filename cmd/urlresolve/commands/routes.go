package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRoutesCmd(a *app) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every route in resolution order",
		Long: `List every route of the route file in the order paths are matched
against them. Routes whose name is taken by an earlier route are marked,
since reversing that name never leads to them.

Examples:
  urlresolve routes
  urlresolve routes --tree
  urlresolve --json routes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			urls := table.URLs()

			switch {
			case a.jsonOutput:
				printSuccess(out, urls.Routes())
				return nil
			case tree:
				return urls.Resolver().Dump(out)
			}

			list := urls.Routes()
			width := 0
			for _, r := range list {
				width = max(width, len(urls.Prefix()+r.Template))
			}

			for _, r := range list {
				template := urls.Prefix() + r.Template
				line := fmt.Sprintf("  %-*s  %s", width, template, cyan(r.HandlerRef))
				if r.Name != "" {
					line += " " + dim("("+r.Name+")")
				}
				if r.Name != "" && !r.Reversible {
					line += " " + yellow("shadowed")
				}
				fmt.Fprintln(out, strings.TrimRight(line, " "))
			}
			fmt.Fprintf(out, "\n  %d routes\n", len(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tree, "tree", false, "Show the nested include structure")
	return cmd
}
