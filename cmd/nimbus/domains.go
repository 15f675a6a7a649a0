package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/nimbushq/nimbus/pkg/types"
	"github.com/spf13/cobra"
)

func newDomainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage domains attached to your account",
	}

	cmd.AddCommand(newDomainsListCmd())
	cmd.AddCommand(newDomainsInspectCmd())
	cmd.AddCommand(newDomainsAddCmd())
	cmd.AddCommand(newDomainsRemoveCmd())
	cmd.AddCommand(newDomainsMoveCmd())

	return cmd
}

func newDomainsListCmd() *cobra.Command {
	var (
		limit int
		next  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all domains",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDomainsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "list")
			if cmd.Flags().Changed("limit") {
				tel.TrackCliOptionLimit(limit)
			}
			tel.TrackCliOptionNext(next)

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			domains, nextCursor, err := client.ListDomains(cmd.Context(), limit, next)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]any{"domains": domains, "next": nextCursor})
			}

			if len(domains) == 0 {
				out.Info("No domains found")
				return nil
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERIFIED\tPROJECT\tAGE")
			for _, d := range domains {
				project := d.ProjectID
				if project == "" {
					project = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Name, checkmark(d.Verified), project, formatAge(d.CreatedAt))
			}
			w.Flush()

			if nextCursor != "" {
				out.Printf("Run again with --next %s for more", nextCursor)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of domains to list")
	cmd.Flags().StringVar(&next, "next", "", "Pagination cursor from a previous listing")

	return cmd
}

func newDomainsInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <domain>",
		Short: "Show details for one domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDomainsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "inspect")
			tel.TrackCliArgumentDomainName(args[0])

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			domain, err := client.GetDomain(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(domain)
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Name\t%s\n", domain.Name)
			fmt.Fprintf(w, "Verified\t%s\n", checkmark(domain.Verified))
			if domain.ProjectID != "" {
				fmt.Fprintf(w, "Project\t%s\n", domain.ProjectID)
			}
			for i, ns := range domain.Nameservers {
				label := ""
				if i == 0 {
					label = "Nameservers"
				}
				fmt.Fprintf(w, "%s\t%s\n", label, ns)
			}
			fmt.Fprintf(w, "Created\t%s\n", formatAge(domain.CreatedAt))
			w.Flush()
			return nil
		},
	}
}

func newDomainsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <domain>",
		Short: "Add a domain to your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDomainsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "add")
			tel.TrackCliArgumentDomainName(args[0])

			if err := types.ValidateDomainName(args[0]); err != nil {
				return err
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			domain, err := client.AddDomain(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(domain)
			}

			out.Success(fmt.Sprintf("Domain %s added", domain.Name))
			if !domain.Verified {
				out.Info("Point the domain at these nameservers to verify ownership:")
				for _, ns := range domain.Nameservers {
					out.Printf("  %s", ns)
				}
			}
			return nil
		},
	}
}

func newDomainsRemoveCmd() *cobra.Command {
	var (
		yes   bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "remove <domain>",
		Aliases: []string{"rm"},
		Short:   "Remove a domain from your account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDomainsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "remove")
			tel.TrackCliFlagYes(yes)
			tel.TrackCliFlagForce(force)
			tel.TrackCliArgumentDomainName(args[0])

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			if !force {
				domain, err := client.GetDomain(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if domain.ProjectID != "" {
					return fmt.Errorf("domain %s is attached to project %s, pass --force to remove anyway", args[0], domain.ProjectID)
				}
			}

			if !yes && !confirm(fmt.Sprintf("Remove domain %s?", args[0])) {
				out.Info("Canceled")
				return nil
			}

			if err := client.RemoveDomain(cmd.Context(), args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Domain %s removed", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even when the domain is attached to a project")

	return cmd
}

func newDomainsMoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "move <domain> <destination>",
		Short: "Transfer a domain to another account or team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDomainsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "move")
			tel.TrackCliFlagYes(yes)
			tel.TrackCliArgumentDomainName(args[0])
			tel.TrackCliArgumentDestination(args[1])

			if !yes && !confirm(fmt.Sprintf("Move domain %s to %s?", args[0], args[1])) {
				out.Info("Canceled")
				return nil
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			if err := client.MoveDomain(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Domain %s moved to %s", args[0], args[1]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
