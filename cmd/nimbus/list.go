package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		limit int
		next  string
	)

	cmd := &cobra.Command{
		Use:     "list [app]",
		Aliases: []string{"ls"},
		Short:   "List recent deployments",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewListTelemetry(telemetryOptions())
			if cmd.Flags().Changed("limit") {
				tel.TrackCliOptionLimit(limit)
			}
			tel.TrackCliOptionNext(next)
			if len(args) > 0 {
				tel.TrackCliArgumentApp(args[0])
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			deployments, nextCursor, err := client.ListDeployments(cmd.Context(), limit, next)
			if err != nil {
				return err
			}

			// The app filter is applied client-side; the listing
			// endpoint is account-scoped.
			if len(args) > 0 {
				filtered := deployments[:0]
				for _, d := range deployments {
					if d.Name == args[0] {
						filtered = append(filtered, d)
					}
				}
				deployments = filtered
			}

			if jsonOutput {
				return out.Print(map[string]any{"deployments": deployments, "next": nextCursor})
			}

			if len(deployments) == 0 {
				out.Info("No deployments found")
				return nil
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATE\tTARGET\tURL\tAGE")
			for _, d := range deployments {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Name, colorState(d.State), orDash(d.Target), orDash(d.URL), formatAge(d.CreatedAt))
			}
			w.Flush()

			if nextCursor != "" {
				out.Printf("Run again with --next %s for more", nextCursor)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of deployments to list")
	cmd.Flags().StringVar(&next, "next", "", "Pagination cursor from a previous listing")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
