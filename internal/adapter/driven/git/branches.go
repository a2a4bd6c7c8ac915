// Package git lists branch names by shelling out to the git CLI.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Branches returns all local and remote branch names for the repository in
// the current working directory. The current-branch marker is stripped from
// local branches and symbolic HEAD references are filtered from remote ones.
func Branches(ctx context.Context) ([]string, error) {
	local, err := run(ctx, "branch")
	if err != nil {
		return nil, err
	}
	remote, err := run(ctx, "branch", "-r")
	if err != nil {
		return nil, err
	}
	return append(parseLocal(local), parseRemote(remote)...), nil
}

// run executes git with the given arguments and returns its stdout. On a
// non-zero exit the wrapped error carries git's stderr.
func run(ctx context.Context, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// parseLocal parses `git branch` output, stripping the "* " marker from the
// current branch.
func parseLocal(raw string) []string {
	var branches []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		branches = append(branches, strings.TrimPrefix(line, "* "))
	}
	return branches
}

// parseRemote parses `git branch -r` output, skipping symbolic HEAD lines
// such as "origin/HEAD -> origin/main".
func parseRemote(raw string) []string {
	var branches []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "->") {
			continue
		}
		branches = append(branches, line)
	}
	return branches
}
