package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type reverseResult struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
	Path string   `json:"path"`
}

func newReverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <name> [args...]",
		Short: "Build the path for a route name",
		Long: `Reverse a route name into a path, filling its placeholders with args
in order, outermost include first.

Examples:
  urlresolve reverse home
  urlresolve reverse user 42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			path, err := table.URLs().Reverse(args[0], args[1:]...)
			if err != nil {
				if a.jsonOutput {
					printJSONError(out, err)
				}
				return err
			}

			if a.jsonOutput {
				printSuccess(out, reverseResult{Name: args[0], Args: args[1:], Path: path})
				return nil
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}
}
