package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/spf13/cobra"
)

func newTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "target",
		Aliases: []string{"targets"},
		Short:   "Manage deployment targets",
	}

	cmd.AddCommand(newTargetListCmd())

	return cmd
}

func newTargetListCmd() *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the deployment targets of a project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewTargetTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "list")
			tel.TrackCliOptionProject(project)

			if project == "" {
				var err error
				if project, err = readProjectName("."); err != nil {
					return err
				}
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			targets, err := client.ListTargets(cmd.Context(), project)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]any{"targets": targets})
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSLUG\tNAME")
			for _, t := range targets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Slug, t.Name)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project name (defaults to the current directory's project)")

	return cmd
}
