package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/nimbushq/nimbus/pkg/types"
	"github.com/spf13/cobra"
)

func newDNSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records for your domains",
	}

	cmd.AddCommand(newDNSListCmd())
	cmd.AddCommand(newDNSAddCmd())
	cmd.AddCommand(newDNSRemoveCmd())
	cmd.AddCommand(newDNSImportCmd())

	return cmd
}

func newDNSListCmd() *cobra.Command {
	var (
		limit int
		next  string
	)

	cmd := &cobra.Command{
		Use:     "list <domain>",
		Aliases: []string{"ls"},
		Short:   "List DNS records for a domain",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDNSTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "list")
			if cmd.Flags().Changed("limit") {
				tel.TrackCliOptionLimit(limit)
			}
			tel.TrackCliOptionNext(next)
			tel.TrackCliArgumentDomain(args[0])

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			records, nextCursor, err := client.ListDNSRecords(cmd.Context(), args[0], limit, next)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]any{"records": records, "next": nextCursor})
			}

			if len(records) == 0 {
				out.Info(fmt.Sprintf("No DNS records found for %s", args[0]))
				return nil
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tVALUE\tTTL")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", r.ID, r.Name, r.Type, r.Value, r.TTL)
			}
			w.Flush()

			if nextCursor != "" {
				out.Printf("Run again with --next %s for more", nextCursor)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records to list")
	cmd.Flags().StringVar(&next, "next", "", "Pagination cursor from a previous listing")

	return cmd
}

func newDNSAddCmd() *cobra.Command {
	var (
		ttl      int
		priority int
	)

	cmd := &cobra.Command{
		Use:   "add <domain> <name> <type> <value>",
		Short: "Add a DNS record to a domain",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDNSTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "add")
			tel.TrackCliOptionTTL(ttl)
			tel.TrackCliOptionPriority(priority)
			tel.TrackCliArgumentDomain(args[0])

			record := types.DNSRecord{
				Name:     args[1],
				Type:     args[2],
				Value:    args[3],
				TTL:      ttl,
				Priority: priority,
			}
			if err := record.Validate(); err != nil {
				return err
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			id, err := client.AddDNSRecord(cmd.Context(), args[0], record)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]string{"id": id})
			}

			out.Success(fmt.Sprintf("Record %s added to %s", id, args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&ttl, "ttl", 0, "Record TTL in seconds (0 uses the platform default)")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority for MX and SRV records")

	return cmd
}

func newDNSRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <domain> <record-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a DNS record",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDNSTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "remove")
			tel.TrackCliFlagYes(yes)
			tel.TrackCliArgumentDomain(args[0])
			tel.TrackCliArgumentRecordID(args[1])

			if !yes && !confirm(fmt.Sprintf("Remove record %s from %s?", args[1], args[0])) {
				out.Info("Canceled")
				return nil
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			if err := client.RemoveDNSRecord(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Record %s removed", args[1]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newDNSImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <domain> <zonefile>",
		Short: "Import DNS records from a zone file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDNSTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "import")
			tel.TrackCliArgumentDomain(args[0])
			tel.TrackCliArgumentZoneFilePath(args[1])

			zone, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("failed to read zone file: %w", err)
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			count, err := client.ImportZone(cmd.Context(), args[0], zone)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]int{"recordCount": count})
			}

			out.Success(fmt.Sprintf("Imported %d records into %s", count, args[0]))
			return nil
		},
	}
}
