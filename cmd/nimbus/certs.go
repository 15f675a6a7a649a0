package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/spf13/cobra"
)

func newCertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certs",
		Aliases: []string{"cert"},
		Short:   "Manage TLS certificates",
	}

	cmd.AddCommand(newCertsListCmd())
	cmd.AddCommand(newCertsIssueCmd())
	cmd.AddCommand(newCertsRemoveCmd())

	return cmd
}

func newCertsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List TLS certificates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewCertsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "list")
			if cmd.Flags().Changed("limit") {
				tel.TrackCliOptionLimit(limit)
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			certs, err := client.ListCerts(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]any{"certs": certs})
			}

			if len(certs) == 0 {
				out.Info("No certificates found")
				return nil
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCNS\tAUTO-RENEW\tAGE\tEXPIRES")
			for _, c := range certs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					c.ID, strings.Join(c.CNs, ","), checkmark(c.AutoRenew),
					formatAge(c.CreatedAt), c.ExpiresAt.Format("2006-01-02"))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of certificates to list")

	return cmd
}

func newCertsIssueCmd() *cobra.Command {
	var (
		cns           []string
		crtPath       string
		keyPath       string
		caPath        string
		challengeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a certificate or upload a custom one",
		Long: `Issue a platform-managed certificate for one or more common names, or
upload a custom certificate by passing --crt and --key (and optionally
--ca for the chain).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewCertsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "issue")
			tel.TrackCliOptionCns(cns)
			tel.TrackCliOptionCrt(crtPath)
			tel.TrackCliOptionKey(keyPath)
			tel.TrackCliOptionCa(caPath)
			tel.TrackCliFlagChallengeOnly(challengeOnly)

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			// Upload path: custom certificate material from disk.
			if crtPath != "" || keyPath != "" {
				if crtPath == "" || keyPath == "" {
					return errors.New("--crt and --key must be passed together")
				}
				crt, err := os.ReadFile(crtPath)
				if err != nil {
					return fmt.Errorf("failed to read certificate: %w", err)
				}
				key, err := os.ReadFile(keyPath)
				if err != nil {
					return fmt.Errorf("failed to read key: %w", err)
				}
				var ca []byte
				if caPath != "" {
					if ca, err = os.ReadFile(caPath); err != nil {
						return fmt.Errorf("failed to read CA chain: %w", err)
					}
				}

				cert, err := client.UploadCert(cmd.Context(), crt, key, ca)
				if err != nil {
					return err
				}
				if jsonOutput {
					return out.Print(cert)
				}
				out.Success(fmt.Sprintf("Certificate %s uploaded", cert.ID))
				return nil
			}

			if len(cns) == 0 {
				return errors.New("at least one common name is required (--cns)")
			}

			cert, err := client.IssueCert(cmd.Context(), cns, challengeOnly)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(cert)
			}

			if challengeOnly {
				out.Success("DNS challenges prepared, rerun without --challenge-only to issue")
				return nil
			}
			out.Success(fmt.Sprintf("Certificate %s issued for %s", cert.ID, strings.Join(cert.CNs, ", ")))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&cns, "cns", nil, "Common names to issue the certificate for")
	cmd.Flags().StringVar(&crtPath, "crt", "", "Path to a custom certificate file")
	cmd.Flags().StringVar(&keyPath, "key", "", "Path to the custom certificate key")
	cmd.Flags().StringVar(&caPath, "ca", "", "Path to the custom certificate CA chain")
	cmd.Flags().BoolVar(&challengeOnly, "challenge-only", false, "Only prepare DNS challenges without issuing")

	return cmd
}

func newCertsRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a certificate",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewCertsTelemetry(telemetryOptions())
			tel.TrackCliSubcommand(cmd.CalledAs(), "remove")
			tel.TrackCliFlagYes(yes)
			tel.TrackCliArgumentID(args[0])

			if !yes && !confirm(fmt.Sprintf("Remove certificate %s?", args[0])) {
				out.Info("Canceled")
				return nil
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			if err := client.RemoveCert(cmd.Context(), args[0]); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Certificate %s removed", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
