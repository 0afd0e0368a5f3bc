package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagColor = false
		flagNoColor = false
		flagAll = false
		flagVerbose = false
		flagDryRun = false
		flagForce = false
	})
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name       string
		color      bool
		noColor    bool
		noColorEnv bool
		tty        bool
		want       bool
		wantErr    bool
	}{
		{name: "default is colored", tty: true, want: true},
		{name: "default is colored even piped", tty: false, want: true},
		{name: "NO_COLOR disables when piped", noColorEnv: true, tty: false, want: false},
		{name: "NO_COLOR ignored on a terminal", noColorEnv: true, tty: true, want: true},
		{name: "--color overrides NO_COLOR", color: true, noColorEnv: true, tty: false, want: true},
		{name: "--no-color always wins", noColor: true, tty: true, want: false},
		{name: "--color with --no-color is rejected", color: true, noColor: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			flagColor = tt.color
			flagNoColor = tt.noColor

			got, err := resolveColor(tt.noColorEnv, tt.tty)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRejectedInvocations(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "unknown flag",
			args:     []string{"--bogus"},
			contains: "--bogus",
		},
		{
			name:     "unknown subcommand",
			args:     []string{"frobnicate"},
			contains: "frobnicate",
		},
		{
			name:     "positional args after separator",
			args:     []string{"check", "--", "extra"},
			contains: "extra",
		},
		{
			name:     "dry-run is fix-only",
			args:     []string{"check", "--dry-run"},
			contains: "dry-run",
		},
		{
			name:     "force is init-only",
			args:     []string{"fix", "--force"},
			contains: "force",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
