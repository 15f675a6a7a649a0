package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nimbushq/nimbus/pkg/api"
	"github.com/nimbushq/nimbus/pkg/telemetry"
	"github.com/nimbushq/nimbus/pkg/types"
	"github.com/spf13/cobra"
)

func newDeployCmd() *cobra.Command {
	var (
		target   string
		regions  []string
		meta     []string
		env      []string
		buildEnv []string
		prod     bool
		force    bool
		public   bool
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "deploy [app-path]",
		Short: "Deploy a project to the platform",
		Long: `Deploy the project in the given directory (the current directory when
omitted). By default deployments go to the preview target; pass --prod
to promote to production.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tel := telemetry.NewDeployTelemetry(telemetryOptions())
			tel.TrackCliOptionMeta(meta)
			tel.TrackCliOptionEnv(env)
			tel.TrackCliOptionBuildEnv(buildEnv)
			tel.TrackCliOptionRegions(regions)
			tel.TrackCliOptionTarget(target)
			tel.TrackCliFlagProd(prod)
			tel.TrackCliFlagForce(force)
			tel.TrackCliFlagPublic(public)
			tel.TrackCliFlagYes(yes)
			if len(args) > 0 {
				tel.TrackCliArgumentApp(args[0])
			}

			if prod && target != "" {
				return errors.New("--prod and --target cannot be combined")
			}
			if prod {
				target = "production"
			}

			appPath := "."
			if len(args) > 0 {
				appPath = args[0]
			}
			absPath, err := filepath.Abs(appPath)
			if err != nil {
				return fmt.Errorf("failed to resolve app path: %w", err)
			}
			name := filepath.Base(absPath)

			metaMap, err := types.ParseMeta(meta)
			if err != nil {
				return fmt.Errorf("invalid --meta value: %w", err)
			}
			envMap, err := types.ParseMeta(env)
			if err != nil {
				return fmt.Errorf("invalid --env value: %w", err)
			}
			buildEnvMap, err := types.ParseMeta(buildEnv)
			if err != nil {
				return fmt.Errorf("invalid --build-env value: %w", err)
			}

			if !yes && target == "production" && !confirm(fmt.Sprintf("Deploy %s to production?", name)) {
				out.Info("Canceled")
				return nil
			}

			client, err := getAPIClient()
			if err != nil {
				return err
			}

			deployment, err := client.CreateDeployment(cmd.Context(), api.CreateDeploymentRequest{
				Name:     name,
				Target:   target,
				Regions:  regions,
				Meta:     metaMap,
				Env:      envMap,
				BuildEnv: buildEnvMap,
				Public:   public,
				Force:    force,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return out.Print(deployment)
			}

			out.Success(fmt.Sprintf("Deployment %s created", deployment.ID))
			out.Printf("State: %s", colorState(deployment.State))
			if deployment.URL != "" {
				out.Printf("URL:   https://%s", deployment.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Deployment target (production, preview or a custom slug)")
	cmd.Flags().StringSliceVar(&regions, "regions", nil, "Regions to deploy to")
	cmd.Flags().StringArrayVar(&meta, "meta", nil, "Deployment metadata as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Runtime environment variable as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&buildEnv, "build-env", "b", nil, "Build-time environment variable as key=value (repeatable)")
	cmd.Flags().BoolVar(&prod, "prod", false, "Deploy to the production target")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Deploy even when nothing changed")
	cmd.Flags().BoolVar(&public, "public", false, "Make the deployment source publicly accessible")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
