package commands

import (
	"github.com/spf13/cobra"
	"go.refold.dev/refold/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <project> [-- build-args...]",
		Short: "Resolve the watch set for a project",
		Long: "Resolve evaluates the given project with the build evaluator and " +
			"prints the deduplicated set of files a hot-reload session should watch. " +
			"Arguments after -- are passed to the evaluator unchanged.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphMode, _ := cmd.Flags().GetString("graph")
			jsonOut, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Resolve(cmd.Context(), args[0], app.ResolveOptions{
				BuildArgs: args[1:],
				Graph:     graphMode,
				JSON:      jsonOut,
				Verbose:   verbose,
			})
		},
	}
	cmd.Flags().StringP("graph", "g", "none", "Project graph mode: none, optional, or required")
	cmd.Flags().Bool("json", false, "Print the watch set as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Print diagnostic output")
	return cmd
}
