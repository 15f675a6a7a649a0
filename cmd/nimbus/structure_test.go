// Package main provides structure tests for the nimbus CLI.
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCommandStructure tests that the command tree is properly built.
func TestCommandStructure(t *testing.T) {
	t.Run("root_command_structure", func(t *testing.T) {
		cmd := newRootCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "nimbus", cmd.Use)

		names := make(map[string]bool)
		for _, subcmd := range cmd.Commands() {
			names[subcmd.Name()] = true
		}

		expected := []string{"deploy", "list", "domains", "dns", "certs", "pull", "init", "target", "config", "version", "completion"}
		for _, name := range expected {
			assert.True(t, names[name], "Root command should have %s subcommand", name)
		}
	})

	t.Run("domains_command_structure", func(t *testing.T) {
		cmd := newDomainsCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "domains", cmd.Use)
		assert.Contains(t, cmd.Aliases, "domain")

		names := make(map[string]bool)
		for _, subcmd := range cmd.Commands() {
			names[subcmd.Name()] = true
		}

		expected := []string{"list", "inspect", "add", "remove", "move"}
		for _, name := range expected {
			assert.True(t, names[name], "Domains command should have %s subcommand", name)
		}
	})

	t.Run("dns_command_structure", func(t *testing.T) {
		cmd := newDNSCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "dns", cmd.Use)

		names := make(map[string]bool)
		for _, subcmd := range cmd.Commands() {
			names[subcmd.Name()] = true
		}

		expected := []string{"list", "add", "remove", "import"}
		for _, name := range expected {
			assert.True(t, names[name], "DNS command should have %s subcommand", name)
		}
	})

	t.Run("certs_command_structure", func(t *testing.T) {
		cmd := newCertsCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "certs", cmd.Use)

		names := make(map[string]bool)
		for _, subcmd := range cmd.Commands() {
			names[subcmd.Name()] = true
		}

		expected := []string{"list", "issue", "remove"}
		for _, name := range expected {
			assert.True(t, names[name], "Certs command should have %s subcommand", name)
		}
	})

	t.Run("config_command_structure", func(t *testing.T) {
		cmd := newConfigCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "config", cmd.Use)

		names := make(map[string]bool)
		for _, subcmd := range cmd.Commands() {
			names[subcmd.Use] = true
		}

		expected := []string{"init", "show", "profile"}
		for _, name := range expected {
			assert.True(t, names[name], "Config command should have %s subcommand", name)
		}
	})

	t.Run("version_command_structure", func(t *testing.T) {
		cmd := newVersionCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "version", cmd.Use)
		assert.Contains(t, cmd.Short, "version")
	})

	t.Run("completion_command_structure", func(t *testing.T) {
		cmd := newCompletionCmd()
		assert.NotNil(t, cmd)
		assert.Equal(t, "completion [bash|zsh|fish|powershell]", cmd.Use)
		assert.Contains(t, cmd.Short, "completion")
	})
}

// TestCommandFlags tests that commands expose their expected flags.
func TestCommandFlags(t *testing.T) {
	t.Run("deploy_flags", func(t *testing.T) {
		cmd := newDeployCmd()
		assert.NotNil(t, cmd)

		flags := cmd.Flags()
		for _, name := range []string{"target", "regions", "meta", "env", "build-env", "prod", "force", "public", "yes"} {
			assert.NotNil(t, flags.Lookup(name), "Deploy command should have --%s", name)
		}
	})

	t.Run("pull_flags", func(t *testing.T) {
		cmd := newPullCmd()
		assert.NotNil(t, cmd)

		flags := cmd.Flags()
		for _, name := range []string{"environment", "git-branch", "prod", "yes"} {
			assert.NotNil(t, flags.Lookup(name), "Pull command should have --%s", name)
		}
	})

	t.Run("certs_issue_flags", func(t *testing.T) {
		cmd := newCertsIssueCmd()
		assert.NotNil(t, cmd)

		flags := cmd.Flags()
		for _, name := range []string{"cns", "crt", "key", "ca", "challenge-only"} {
			assert.NotNil(t, flags.Lookup(name), "Certs issue command should have --%s", name)
		}
	})

	t.Run("config_init_flags", func(t *testing.T) {
		cmd := newConfigInitCmd()
		assert.NotNil(t, cmd)
		assert.True(t, cmd.Flags().HasFlags(), "Config init command should have flags")
	})
}
