package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  CommandConfig
		ok   bool
	}{
		{
			name: "minimal valid",
			cfg:  CommandConfig{Name: "Lint", Cmd: []string{"lint"}},
			ok:   true,
		},
		{
			name: "separately with pass_files",
			cfg:  CommandConfig{Name: "Lint", Cmd: []string{"lint"}, PassFiles: true, Separately: true},
			ok:   true,
		},
		{
			name: "separately without pass_files",
			cfg:  CommandConfig{Name: "Lint", Cmd: []string{"lint"}, Separately: true},
		},
		{
			name: "missing name",
			cfg:  CommandConfig{Cmd: []string{"lint"}},
		},
		{
			name: "missing command",
			cfg:  CommandConfig{Name: "Lint"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := NewCommand(tt.cfg)
			if tt.ok {
				require.NoError(t, err)
				assert.NotNil(t, check)
				return
			}
			require.Error(t, err)
			var usageErr *UsageError
			assert.ErrorAs(t, err, &usageErr)
		})
	}
}

func TestCommandCheck(t *testing.T) {
	repo := testRepo([]string{"a.py", "b.py", "c.go"}, nil)

	t.Run("zero exit passes", func(t *testing.T) {
		check, _ := NewCommand(CommandConfig{Name: "Lint", Cmd: []string{"lint", "--strict"}})
		gw := &fakeGateway{}

		problem, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		assert.Nil(t, problem)
		assert.Equal(t, [][]string{{"lint", "--strict"}}, gw.commands)
	})

	t.Run("pass_files appends the filtered staged files", func(t *testing.T) {
		check, _ := NewCommand(CommandConfig{
			Name: "Lint", Cmd: []string{"lint"}, PassFiles: true, Include: []string{"*.py"},
		})
		gw := &fakeGateway{}

		_, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"lint", "a.py", "b.py"}}, gw.commands)
	})

	t.Run("non-zero exit reports the output", func(t *testing.T) {
		check, _ := NewCommand(CommandConfig{
			Name: "Lint", Cmd: []string{"lint"}, Fix: []string{"lint", "--fix"},
			PassFiles: true, Include: []string{"*.py"},
		})
		gw := &fakeGateway{respond: func(argv []string) *CommandResult {
			return &CommandResult{Output: "a.py:1: bad\n", ExitCode: 1}
		}}

		problem, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		require.NotNil(t, problem)
		assert.Equal(t, "a.py:1: bad", problem.Message)
		assert.Equal(t, []string{"lint", "--fix", "a.py", "b.py"}, problem.Autofix)
	})

	t.Run("no fix command means unfixable problem", func(t *testing.T) {
		check, _ := NewCommand(CommandConfig{Name: "Lint", Cmd: []string{"lint"}})
		gw := &fakeGateway{respond: func(argv []string) *CommandResult {
			return &CommandResult{ExitCode: 2}
		}}

		problem, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		require.NotNil(t, problem)
		assert.False(t, problem.Fixable())
		assert.False(t, check.Fixable())
	})

	t.Run("separately runs once per file", func(t *testing.T) {
		check, _ := NewCommand(CommandConfig{
			Name: "Lint", Cmd: []string{"lint"}, Fix: []string{"fixer"},
			PassFiles: true, Separately: true, Include: []string{"*.py"},
		})
		failures := map[string]bool{"b.py": true}
		gw := &fakeGateway{respond: func(argv []string) *CommandResult {
			if failures[argv[len(argv)-1]] {
				return &CommandResult{Output: "b.py broken\n", ExitCode: 1}
			}
			return &CommandResult{}
		}}

		problem, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"lint", "a.py"}, {"lint", "b.py"}}, gw.commands)
		require.NotNil(t, problem)
		assert.Equal(t, "b.py broken", problem.Message)
		// The shared fix command gets no trailing files.
		assert.Equal(t, []string{"fixer"}, problem.Autofix)
	})

	t.Run("check is re-invocable with identical results", func(t *testing.T) {
		check, _ := NewCommand(CommandConfig{Name: "Lint", Cmd: []string{"lint"}})
		gw := &fakeGateway{respond: func(argv []string) *CommandResult {
			return &CommandResult{ExitCode: 1, Output: "bad\n"}
		}}

		first, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		second, err := check.Check(context.Background(), gw, repo)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
	})
}

func TestFactoriesBuild(t *testing.T) {
	for name, factory := range Builtins() {
		check, err := factory(FactoryOptions{})
		require.NoError(t, err, name)
		assert.Equal(t, name, check.Name())
		assert.False(t, check.Slow(), name)
	}
}

func TestFactorySlowOption(t *testing.T) {
	check, err := GoLint(FactoryOptions{Slow: true})
	require.NoError(t, err)
	assert.True(t, check.Slow())
}
