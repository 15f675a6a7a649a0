// Package main provides the nimbus CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nimbushq/nimbus/pkg/config"
	"github.com/nimbushq/nimbus/pkg/observability/logging"
	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/nimbushq/nimbus/pkg/telemetry/spool"
	"github.com/nimbushq/nimbus/pkg/xdg"
	"github.com/spf13/cobra"
)

var (
	version     = "1.4.0-dev"
	cfgFile     string
	profileName string
	jsonOutput  bool
	debugMode   bool

	cfg   *config.ClientConfig
	out   *logging.CLILogger
	store *telemetry.Store
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()

	// Flush telemetry once, best-effort. The short deadline keeps a
	// slow or dead endpoint from holding up process exit, and a failed
	// save never changes the exit code.
	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		store.Save(ctx)
		cancel()
	}

	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nimbus",
		Short: "Nimbus deployment platform CLI",
		Long: `Nimbus is a command-line interface for the Nimbus cloud deployment
platform. It deploys projects, manages domains, DNS records, and TLS
certificates, and pulls project environments for local development.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			out = logging.NewCLILogger(jsonOutput, os.Stdout)

			level := "info"
			if debugMode {
				level = "debug"
				out.SetLevel("debug")
			}
			if err := logging.Initialize(logging.Config{Level: level, Format: "text"}); err != nil {
				return err
			}

			// Config and telemetry are not needed for local-only
			// commands, including everything under "config" which
			// loads the file itself.
			for c := cmd; c != nil; c = c.Parent() {
				switch c.Name() {
				case "config", "version", "completion", "help":
					return nil
				}
			}

			if err := loadConfig(); err != nil {
				return err
			}
			initTelemetry()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "Profile to use (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDomainsCmd())
	rootCmd.AddCommand(newDNSCmd())
	rootCmd.AddCommand(newCertsCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newTargetCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadClientConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if profileName != "" {
		cfg.CurrentProfile = profileName
	}

	if _, ok := cfg.Profiles[cfg.CurrentProfile]; !ok {
		return fmt.Errorf("profile '%s' not found in config", cfg.CurrentProfile)
	}

	return nil
}

// initTelemetry creates this invocation's event store. Recording is
// always available to command handlers; whether anything leaves the
// machine depends on the profile and the NIMBUS_TELEMETRY override.
func initTelemetry() {
	prof, err := cfg.Profile()
	if err != nil || !config.TelemetryEnabled(prof) {
		store = telemetry.NewStore(nil)
		return
	}
	store = telemetry.NewStore(newReporter(prof))
}

// newReporter picks the reporting destination: the configured network
// endpoint when one is set, otherwise the local spool for a later
// drain. Returns nil (discard) when neither is usable.
func newReporter(prof *config.ClientProfile) telemetry.Reporter {
	if prof.Telemetry.Endpoint != "" {
		reporter := telemetry.NewHTTPReporter(prof.Telemetry.Endpoint, telemetry.ClientID(), version, nil)
		drainSpool(prof, reporter)
		return reporter
	}
	if sp := openSpool(prof, true); sp != nil {
		return sp
	}
	return nil
}

// drainSpool forwards batches queued while no endpoint was reachable to
// the now-configured reporter. Best-effort with a short deadline:
// failures are logged at debug and the remaining batches stay queued.
func drainSpool(prof *config.ClientProfile, reporter telemetry.Reporter) {
	sp := openSpool(prof, false)
	if sp == nil {
		return
	}
	defer sp.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sp.Drain(ctx, reporter); err != nil {
		logging.WithField("error", err.Error()).Debug("telemetry spool drain failed")
	}
}

// openSpool opens the profile's telemetry spool. With create false a
// missing sqlite spool file returns nil instead of creating an empty
// database just to drain it.
func openSpool(prof *config.ClientProfile, create bool) *spool.Spool {
	path := prof.Telemetry.Spool
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		sp, err := spool.NewPostgres(path)
		if err != nil {
			logging.WithField("error", err.Error()).Debug("telemetry spool unavailable")
			return nil
		}
		return sp
	}

	if path == "" {
		var err error
		path, err = xdg.StateFile("telemetry.db")
		if err != nil {
			logging.WithField("error", err.Error()).Debug("telemetry spool unavailable")
			return nil
		}
	}

	if !create {
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	sp, err := spool.NewSQLite(path)
	if err != nil {
		logging.WithField("error", err.Error()).Debug("telemetry spool unavailable")
		return nil
	}
	return sp
}

// telemetryOptions is the {output, store} pair every specialized
// telemetry client is constructed with.
func telemetryOptions() telemetry.Options {
	return telemetry.Options{Output: out, Store: store}
}
