package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/spf13/cobra"
)

func newPullCmd() *cobra.Command {
	var (
		environment string
		gitBranch   string
		prod        bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "pull [project-path]",
		Short: "Pull a project's environment for local development",
		Long: `Pull the environment variables of the project in the given directory
(the current directory when omitted), scoped to a deployment target.
Values are printed for inspection; redirect or pipe to capture them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewPullTelemetry(telemetryOptions())
			tel.TrackCliOptionEnvironment(environment)
			tel.TrackCliOptionGitBranch(gitBranch)
			tel.TrackCliFlagProd(prod)
			tel.TrackCliFlagYes(yes)
			if len(args) > 0 {
				tel.TrackCliArgumentProjectPath(args[0])
			}

			if prod && environment != "" {
				return errors.New("--prod and --environment cannot be combined")
			}
			target := environment
			if prod {
				target = "production"
			}
			if target == "" {
				target = "preview"
			}

			projectPath := "."
			if len(args) > 0 {
				projectPath = args[0]
			}
			project, err := readProjectName(projectPath)
			if err != nil {
				return err
			}

			if !yes && target == "production" && !confirm(fmt.Sprintf("Pull production environment for %s?", project)) {
				out.Info("Canceled")
				return nil
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			env, err := client.GetProjectEnv(cmd.Context(), project, target, gitBranch)
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(map[string]any{"env": env})
			}

			if len(env) == 0 {
				out.Info(fmt.Sprintf("No environment variables for %s target %s", project, target))
				return nil
			}

			w := tabwriter.NewWriter(out.Writer(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE\tTARGET")
			for _, v := range env {
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.Key, v.Value, v.Target)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&environment, "environment", "", "Deployment target to pull from (defaults to preview)")
	cmd.Flags().StringVar(&gitBranch, "git-branch", "", "Git branch to scope preview variables to")
	cmd.Flags().BoolVar(&prod, "prod", false, "Pull from the production target")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
