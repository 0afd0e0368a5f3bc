// Package git reads the repository state a pre-commit run operates on.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Repository is an immutable snapshot of the change set for one run.
// The lists are computed once at startup; fixes applied later in the same
// run are not reflected here.
type Repository struct {
	// Staged files, excluding files staged for deletion.
	Staged []string

	// StagedForDeletion files (git rm, or delete + git add).
	StagedForDeletion []string

	// Unstaged files with local modifications.
	Unstaged []string
}

// FindRoot locates the toplevel directory of the enclosing git repository.
// It verifies that git is available before anything else runs.
func FindRoot(ctx context.Context) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git not found in PATH: %w", err)
	}

	out, err := exec.CommandContext(ctx, gitPath, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("must be run inside a git repository")
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("could not determine the git repository root")
	}
	return root, nil
}

// Snapshot reads the three file lists from git. It must be called from the
// repository root.
func Snapshot(ctx context.Context) (*Repository, error) {
	staged, err := nameOnly(ctx, "diff", "--name-only", "--cached", "--diff-filter=d")
	if err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}

	deleted, err := nameOnly(ctx, "diff", "--name-only", "--cached", "--diff-filter=D")
	if err != nil {
		return nil, fmt.Errorf("listing files staged for deletion: %w", err)
	}

	unstaged, err := nameOnly(ctx, "diff", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("listing unstaged files: %w", err)
	}

	return &Repository{
		Staged:            staged,
		StagedForDeletion: deleted,
		Unstaged:          unstaged,
	}, nil
}

func nameOnly(ctx context.Context, args ...string) ([]string, error) {
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}

	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}
