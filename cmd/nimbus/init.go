package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [example] [dir]",
		Short: "Scaffold a project from a starter template",
		Long: `Scaffold a new project directory from one of the platform's starter
templates. Without arguments the available templates are listed.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewInitTelemetry(telemetryOptions())
			tel.TrackCliFlagForce(force)
			if len(args) > 0 {
				tel.TrackCliArgumentExample(args[0])
			}
			if len(args) > 1 {
				tel.TrackCliArgumentDir(args[1])
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				examples, err := client.ListExamples(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return out.Print(map[string]any{"examples": examples})
				}
				out.Info("Available templates:")
				for _, name := range examples {
					out.Printf("  %s", name)
				}
				out.Printf("Run 'nimbus init <example>' to scaffold one")
				return nil
			}

			example := args[0]
			dir := example
			if len(args) > 1 {
				dir = args[1]
			}

			if _, err := os.Stat(dir); err == nil && !force {
				return fmt.Errorf("directory %s already exists, pass --force to reuse it", dir)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			name := filepath.Base(dir)
			if err := writeProjectFile(dir, projectFile{Name: name, Framework: example}); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Initialized %s from template %s", dir, example))
			out.Printf("Run 'cd %s && nimbus deploy' to deploy it", dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Reuse the target directory if it already exists")

	return cmd
}
