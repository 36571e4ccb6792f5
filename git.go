package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether input names a remote repository rather than a local
// path. A bare "project.git" directory on disk is still a local path.
func isGitURL(input string) bool {
	if strings.HasPrefix(input, "git@") && strings.Contains(input, ":") {
		return true
	}
	if strings.HasPrefix(input, "ssh://") || strings.HasPrefix(input, "git://") {
		return true
	}
	// Plain web URLs are only repositories with the .git suffix.
	if strings.HasPrefix(input, "https://") || strings.HasPrefix(input, "http://") {
		return strings.HasSuffix(input, ".git")
	}
	return false
}

// repoName is the last path element of a repository URL without ".git".
func repoName(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	if i := strings.LastIndex(trimmed, ":"); i >= 0 && !strings.Contains(trimmed[i:], "//") {
		trimmed = trimmed[i+1:]
	}
	return path.Base(trimmed)
}

// cloneGitRepo shallow-clones url into a new temporary directory and returns it.
// The caller removes the directory.
func cloneGitRepo(ctx context.Context, url string, progress io.Writer) (string, error) {
	tempDir, err := os.MkdirTemp("", "consolidar-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	_, err = git.PlainCloneContext(ctx, tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      progress,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
		Depth:         1,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository '%s': %w", url, err)
	}
	return tempDir, nil
}
