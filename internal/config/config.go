// Package config loads the precommit.yaml check manifest and turns it
// into a populated Checklist.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hollowlog/precommit/internal/checks"
	"github.com/hollowlog/precommit/internal/engine"
)

// FileName is the manifest name looked up at the repository root.
const FileName = "precommit.yaml"

// ConfigError reports a missing or invalid configuration file. It is
// fatal and distinct from any check outcome: no checks run when Load
// fails.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrNotFound wraps the missing-manifest case so callers can suggest
// running init.
var ErrNotFound = errors.New("configuration file not found")

type manifest struct {
	Checks []entry `yaml:"checks"`
}

// entry is one declared check: either a builtin reference or a custom
// command check. The two forms are mutually exclusive.
type entry struct {
	Builtin    string   `yaml:"builtin"`
	Name       string   `yaml:"name"`
	Command    []string `yaml:"command"`
	Fix        []string `yaml:"fix"`
	Args       []string `yaml:"args"`
	PassFiles  bool     `yaml:"pass_files"`
	Separately bool     `yaml:"separately"`
	Slow       bool     `yaml:"slow"`
	Include    []string `yaml:"include"`
	Exclude    []string `yaml:"exclude"`
}

// Load reads the manifest at path and registers every declared check,
// in file order, on a fresh Checklist.
func Load(path string) (*engine.Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Path: path, Err: ErrNotFound}
		}
		return nil, &ConfigError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes a manifest. Unknown keys are rejected so that typos
// surface instead of silently disabling a check.
func Parse(path string, data []byte) (*engine.Checklist, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigError{Path: path, Err: errors.New("file is empty")}
		}
		return nil, &ConfigError{Path: path, Err: err}
	}
	if len(m.Checks) == 0 {
		return nil, &ConfigError{Path: path, Err: errors.New("no checks declared")}
	}

	builtins := checks.Builtins()
	list := &engine.Checklist{}
	for i, e := range m.Checks {
		check, err := buildEntry(e, builtins)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("checks[%d]: %w", i, err)}
		}
		if err := list.Check(check); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	}
	return list, nil
}

func buildEntry(e entry, builtins map[string]checks.Factory) (checks.Check, error) {
	if e.Builtin != "" && len(e.Command) > 0 {
		return nil, fmt.Errorf("builtin and command are mutually exclusive")
	}

	if e.Builtin != "" {
		factory, ok := builtins[e.Builtin]
		if !ok {
			return nil, fmt.Errorf("unknown builtin check %q (known: %s)",
				e.Builtin, strings.Join(builtinNames(builtins), ", "))
		}
		return factory(checks.FactoryOptions{
			Args:    e.Args,
			Include: e.Include,
			Exclude: e.Exclude,
			Slow:    e.Slow,
		})
	}

	if len(e.Args) > 0 {
		return nil, fmt.Errorf("args is only valid for builtin checks; put arguments in command")
	}
	return checks.NewCommand(checks.CommandConfig{
		Name:       e.Name,
		Cmd:        e.Command,
		Fix:        e.Fix,
		PassFiles:  e.PassFiles,
		Separately: e.Separately,
		Slow:       e.Slow,
		Include:    e.Include,
		Exclude:    e.Exclude,
	})
}

func builtinNames(builtins map[string]checks.Factory) []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
