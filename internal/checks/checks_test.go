package checks

import (
	"context"
	"fmt"
	"slices"

	"github.com/hollowlog/precommit/internal/git"
)

// fakeGateway records every command and serves canned files and
// results, standing in for subprocesses and the working tree.
type fakeGateway struct {
	files    map[string][]byte
	respond  func(argv []string) *CommandResult
	commands [][]string
}

func (g *fakeGateway) Run(ctx context.Context, argv []string) (*CommandResult, error) {
	g.commands = append(g.commands, slices.Clone(argv))
	if g.respond != nil {
		return g.respond(argv), nil
	}
	return &CommandResult{}, nil
}

func (g *fakeGateway) ReadFile(path string) ([]byte, error) {
	data, ok := g.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return data, nil
}

func testRepo(staged, unstaged []string) *git.Repository {
	return &git.Repository{Staged: staged, Unstaged: unstaged}
}
