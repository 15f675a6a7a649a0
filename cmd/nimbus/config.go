package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage nimbus configuration",
		Long:  "Initialize, view, and manage nimbus CLI configuration and profiles.",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigProfileCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		apiURL    string
		team      string
		telemetry bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize nimbus configuration",
		Long: `Create a new nimbus configuration file with a default profile.

This will create ~/.nimbus/config.yaml with a default profile configuration.

Examples:
  nimbus config init
  nimbus config init --api https://api.staging.nimbus.dev
  nimbus config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check if config already exists
			if !force {
				if _, err := os.Stat(cfgFile); err == nil {
					fmt.Printf("Config file already exists: %s\n", cfgFile)
					fmt.Println("Use --force to overwrite")
					return nil
				}
			}

			newCfg := &config.ClientConfig{
				CurrentProfile: "default",
				Profiles: map[string]config.ClientProfile{
					"default": {
						API:  apiURL,
						Team: team,
						Telemetry: config.TelemetryConfig{
							Enabled: telemetry,
						},
					},
				},
			}

			if err := config.SaveClientConfig(cfgFile, newCfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("✓ Configuration initialized: %s\n", cfgFile)
			fmt.Printf("  Profile: default\n")
			fmt.Printf("  API: %s\n", apiURL)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", config.DefaultAPI, "Platform API endpoint")
	cmd.Flags().StringVar(&team, "team", "", "Default team scope")
	cmd.Flags().BoolVar(&telemetry, "telemetry", true, "Enable anonymized usage reporting")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the current nimbus configuration.

Examples:
  nimbus config show
  nimbus config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config without the PersistentPreRun check
			localCfg, err := config.LoadClientConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(localCfg)
			}

			fmt.Printf("Configuration file: %s\n\n", cfgFile)
			fmt.Printf("Current profile: %s\n\n", localCfg.CurrentProfile)

			fmt.Println("Profiles:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tAPI\tTEAM\tTELEMETRY\tTLS")
			fmt.Fprintln(w, "----\t---\t----\t---------\t---")

			for name, prof := range localCfg.Profiles {
				marker := " "
				if name == localCfg.CurrentProfile {
					marker = "*"
				}

				team := prof.Team
				if team == "" {
					team = "-"
				}

				telemetryStatus := "disabled"
				if prof.Telemetry.Enabled {
					telemetryStatus = "enabled"
				}

				tlsStatus := "no"
				if prof.TLS.ClientCert != "" || prof.TLS.CACert != "" {
					tlsStatus = "yes"
				}

				fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\n",
					marker, name, prof.API, team, telemetryStatus, tlsStatus)
			}

			w.Flush()
			return nil
		},
	}

	return cmd
}

func newConfigProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage configuration profiles",
		Long:  "Add, remove, and switch between nimbus configuration profiles.",
	}

	cmd.AddCommand(newConfigProfileAddCmd())
	cmd.AddCommand(newConfigProfileRemoveCmd())
	cmd.AddCommand(newConfigProfileUseCmd())
	cmd.AddCommand(newConfigProfileListCmd())

	return cmd
}

func newConfigProfileAddCmd() *cobra.Command {
	var (
		apiURL     string
		team       string
		caCert     string
		clientCert string
		clientKey  string
		telemetry  bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a new profile",
		Long: `Add a new configuration profile.

Examples:
  nimbus config profile add staging --api https://api.staging.nimbus.dev
  nimbus config profile add work --team acme-corp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileName := args[0]

			// Load existing config
			localCfg, err := config.LoadClientConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Check if profile already exists
			if _, exists := localCfg.Profiles[profileName]; exists {
				return fmt.Errorf("profile '%s' already exists", profileName)
			}

			// Add new profile
			localCfg.Profiles[profileName] = config.ClientProfile{
				API:  apiURL,
				Team: team,
				TLS: config.ClientTLSConfig{
					CACert:     caCert,
					ClientCert: clientCert,
					ClientKey:  clientKey,
				},
				Telemetry: config.TelemetryConfig{
					Enabled: telemetry,
				},
			}

			// Save config
			if err := config.SaveClientConfig(cfgFile, localCfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("✓ Profile added: %s\n", profileName)
			fmt.Printf("  API: %s\n", apiURL)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", config.DefaultAPI, "Platform API endpoint")
	cmd.Flags().StringVar(&team, "team", "", "Default team scope")
	cmd.Flags().StringVar(&caCert, "ca-cert", "", "CA certificate file")
	cmd.Flags().StringVar(&clientCert, "client-cert", "", "Client certificate file")
	cmd.Flags().StringVar(&clientKey, "client-key", "", "Client key file")
	cmd.Flags().BoolVar(&telemetry, "telemetry", true, "Enable anonymized usage reporting")

	return cmd
}

func newConfigProfileRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a profile",
		Long: `Remove a configuration profile.

Examples:
  nimbus config profile remove staging`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileName := args[0]

			// Load existing config
			localCfg, err := config.LoadClientConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Check if profile exists
			if _, exists := localCfg.Profiles[profileName]; !exists {
				return fmt.Errorf("profile '%s' not found", profileName)
			}

			// Don't allow removing the current profile
			if localCfg.CurrentProfile == profileName {
				return fmt.Errorf("cannot remove current profile (use 'nimbus config profile use' to switch first)")
			}

			// Remove profile
			delete(localCfg.Profiles, profileName)

			// Save config
			if err := config.SaveClientConfig(cfgFile, localCfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("✓ Profile removed: %s\n", profileName)
			return nil
		},
	}

	return cmd
}

func newConfigProfileUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use NAME",
		Short: "Switch to a profile",
		Long: `Set the default profile to use.

Examples:
  nimbus config profile use staging
  nimbus config profile use default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileName := args[0]

			// Load existing config
			localCfg, err := config.LoadClientConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Check if profile exists
			if _, exists := localCfg.Profiles[profileName]; !exists {
				return fmt.Errorf("profile '%s' not found", profileName)
			}

			// Update current profile
			localCfg.CurrentProfile = profileName

			// Save config
			if err := config.SaveClientConfig(cfgFile, localCfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("✓ Switched to profile: %s\n", profileName)
			return nil
		},
	}

	return cmd
}

func newConfigProfileListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Long: `List all available configuration profiles.

Examples:
  nimbus config profile list
  nimbus config profile list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config
			localCfg, err := config.LoadClientConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(localCfg.Profiles)
			}

			fmt.Println("Available profiles:")

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tAPI\tTEAM\tTELEMETRY")
			fmt.Fprintln(w, "----\t---\t----\t---------")

			for name, prof := range localCfg.Profiles {
				marker := " "
				if name == localCfg.CurrentProfile {
					marker = "*"
				}

				team := prof.Team
				if team == "" {
					team = "-"
				}

				telemetryStatus := "disabled"
				if prof.Telemetry.Enabled {
					telemetryStatus = "enabled"
				}

				fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
					marker, name, prof.API, team, telemetryStatus)
			}

			w.Flush()
			return nil
		},
	}

	return cmd
}
