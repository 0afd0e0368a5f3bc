package config

// DefaultManifest is the precommit.yaml written by 'precommit init'.
// Users are expected to edit it to match their project.
const DefaultManifest = `# Pre-commit checks for this repository.
# Created by 'precommit init'; edit freely.
#
# Each entry is either a builtin check:
#   - builtin: GoFormat
#     exclude: ["vendor/*"]
#     slow: true
# or a custom command (non-zero exit reports a problem):
#   - name: ShellLint
#     command: ["shellcheck"]
#     pass_files: true
#     include: ["*.sh"]
checks:
  - builtin: NoStagedAndUnstagedChanges
  - builtin: NoWhitespaceInFilePath
  - builtin: DoNotSubmit

  - builtin: GoFormat
  - builtin: GoVet
  - builtin: GoLint
    slow: true

  # - builtin: PythonFormat
  # - builtin: PythonLint
  # - builtin: PythonImportOrder
  # - builtin: PythonTypes
  # - builtin: JavaScriptLint
  # - builtin: RustFormat
`

// HookScript is the git pre-commit hook installed by 'precommit init'.
const HookScript = "#!/bin/sh\n\nprecommit check --all\n"
