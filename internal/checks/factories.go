package checks

// Factories for command checks wrapping common tools. Each is a thin
// CommandConfig with sensible include defaults; configuration entries
// can extend the include list and append extra arguments.

// GoVet builds a check that runs go vet over the module.
func GoVet(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:    "GoVet",
		Cmd:     append([]string{"go", "vet", "./..."}, opts.Args...),
		Include: opts.Include,
		Exclude: opts.Exclude,
		Slow:    opts.Slow,
	})
}

// GoLint builds a check that runs golangci-lint, fixing with --fix.
func GoLint(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:    "GoLint",
		Cmd:     append([]string{"golangci-lint", "run"}, opts.Args...),
		Fix:     append([]string{"golangci-lint", "run", "--fix"}, opts.Args...),
		Include: opts.Include,
		Exclude: opts.Exclude,
		Slow:    opts.Slow,
	})
}

// PythonFormat builds a check for Python formatting with black.
func PythonFormat(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:      "PythonFormat",
		Cmd:       append([]string{"black", "--check"}, opts.Args...),
		Fix:       append([]string{"black"}, opts.Args...),
		PassFiles: true,
		Include:   append([]string{"*.py"}, opts.Include...),
		Exclude:   opts.Exclude,
		Slow:      opts.Slow,
	})
}

// PythonLint builds a check that lints Python code with flake8.
func PythonLint(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:      "PythonLint",
		Cmd:       append([]string{"flake8", "--max-line-length=88"}, opts.Args...),
		PassFiles: true,
		Include:   append([]string{"*.py"}, opts.Include...),
		Exclude:   opts.Exclude,
		Slow:      opts.Slow,
	})
}

// PythonImportOrder builds a check for import ordering with isort.
func PythonImportOrder(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:      "PythonImportOrder",
		Cmd:       append([]string{"isort", "-c"}, opts.Args...),
		Fix:       append([]string{"isort"}, opts.Args...),
		PassFiles: true,
		Include:   append([]string{"*.py"}, opts.Include...),
		Exclude:   opts.Exclude,
		Slow:      opts.Slow,
	})
}

// PythonTypes builds a check for static type annotations with mypy.
func PythonTypes(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:      "PythonTypes",
		Cmd:       append([]string{"mypy"}, opts.Args...),
		PassFiles: true,
		Include:   append([]string{"*.py"}, opts.Include...),
		Exclude:   opts.Exclude,
		Slow:      opts.Slow,
	})
}

// JavaScriptLint builds a check that lints JavaScript with ESLint.
func JavaScriptLint(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:      "JavaScriptLint",
		Cmd:       append([]string{"npx", "eslint"}, opts.Args...),
		Fix:       append([]string{"npx", "eslint", "--fix"}, opts.Args...),
		PassFiles: true,
		Include:   append([]string{"*.js"}, opts.Include...),
		Exclude:   opts.Exclude,
		Slow:      opts.Slow,
	})
}

// RustFormat builds a check for Rust formatting with cargo fmt.
func RustFormat(opts FactoryOptions) (Check, error) {
	return NewCommand(CommandConfig{
		Name:      "RustFormat",
		Cmd:       append([]string{"cargo", "fmt", "--", "--check"}, opts.Args...),
		Fix:       append([]string{"cargo", "fmt", "--"}, opts.Args...),
		PassFiles: true,
		Include:   append([]string{"*.rs"}, opts.Include...),
		Exclude:   opts.Exclude,
		Slow:      opts.Slow,
	})
}
