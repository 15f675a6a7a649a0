package main

import (
	"bufio"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/nimbushq/nimbus/pkg/api"
	"github.com/nimbushq/nimbus/pkg/config"
	"github.com/nimbushq/nimbus/pkg/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Nimbus CLI version %s\n", version)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for the nimbus CLI.

To load completions:

Bash:
  $ source <(nimbus completion bash)
  # To load completions for each session, add to ~/.bashrc:
  $ nimbus completion bash > /etc/bash_completion.d/nimbus

Zsh:
  # If shell completion is not already enabled, enable it:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, add to ~/.zshrc:
  $ nimbus completion zsh > "${fpath[1]}/_nimbus"

Fish:
  $ nimbus completion fish | source
  # To load completions for each session, add to ~/.config/fish/config.fish:
  $ nimbus completion fish > ~/.config/fish/completions/nimbus.fish

PowerShell:
  PS> nimbus completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, add to your PowerShell profile:
  PS> nimbus completion powershell > nimbus.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				cmd.Root().GenPowerShellCompletion(os.Stdout)
			}
		},
	}
}

// getAPIClient builds a platform API client from the active profile.
func getAPIClient() (*api.Client, error) {
	prof, err := cfg.Profile()
	if err != nil {
		return nil, err
	}

	httpClient, err := createHTTPClient(prof)
	if err != nil {
		return nil, err
	}

	return api.New(api.Config{
		BaseURL:    prof.API,
		Token:      resolveToken(),
		UserAgent:  "nimbus/" + version,
		HTTPClient: httpClient,
	}), nil
}

// createHTTPClient creates an HTTP client with TLS configuration.
func createHTTPClient(prof *config.ClientProfile) (*http.Client, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	// Load CA certificate if specified
	if prof.TLS.CACert != "" {
		caCert, err := os.ReadFile(prof.TLS.CACert)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA certificate")
		}

		tlsConfig.RootCAs = caCertPool
	}

	// Load client certificate if specified
	if prof.TLS.ClientCert != "" && prof.TLS.ClientKey != "" {
		cert, err := tls.LoadX509KeyPair(prof.TLS.ClientCert, prof.TLS.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %w", err)
		}

		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return &http.Client{
		Transport: &http.Transport{TLSClientConfig: tlsConfig},
		Timeout:   30 * time.Second,
	}, nil
}

// resolveToken finds the API token for this invocation. The NIMBUS_TOKEN
// environment variable wins over the token file. An empty token is
// passed through; the API rejects unauthenticated calls itself.
func resolveToken() string {
	if token := os.Getenv("NIMBUS_TOKEN"); token != "" {
		return token
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(homeDir, ".nimbus", "token"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// confirm prompts for a yes/no answer on stdin. Non-interactive runs
// refuse by default so scripted invocations must pass --yes.
func confirm(prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// colorState renders a deployment state with the conventional color.
func colorState(state string) string {
	switch state {
	case types.DeploymentStateReady:
		return color.GreenString(state)
	case types.DeploymentStateError:
		return color.RedString(state)
	case types.DeploymentStateBuilding, types.DeploymentStateQueued:
		return color.YellowString(state)
	default:
		return state
	}
}

// checkmark renders a boolean as a colored glyph for table output.
func checkmark(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// formatAge renders how long ago t was, in the largest whole unit.
func formatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
