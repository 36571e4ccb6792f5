package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// Rules decides which directories are entered and which files are retained.
type Rules struct {
	extensions []string
	ignored    map[string]struct{}
	excluded   map[string]struct{}
	hidden     string

	root          string
	ignoreMatcher gitignore.IgnoreMatcher
}

// NewRules builds the filters for one traversal rooted at root. When the config
// asks for it, the root .gitignore is loaded as an extra pruning rule.
func NewRules(cfg Config, root string) (*Rules, error) {
	r := &Rules{
		extensions: cfg.Extensions,
		ignored:    toSet(cfg.IgnoredDirs),
		excluded:   toSet(cfg.ExcludedNames),
		hidden:     cfg.HiddenPrefix,
		root:       root,
	}
	r.excluded[cfg.OutputName+".lock"] = struct{}{}

	if cfg.RespectGitignore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				return nil, fmt.Errorf("could not parse .gitignore file %s: %w", gitIgnorePath, err)
			}
			r.ignoreMatcher = matcher
		}
	}
	return r, nil
}

// AdmissibleDirs returns the children of dir that may be descended into,
// in their original order. dir is relative to the root.
func (r *Rules) AdmissibleDirs(dir string, children []string) []string {
	admitted := make([]string, 0, len(children))
	for _, name := range children {
		if _, skip := r.ignored[name]; skip {
			continue
		}
		if r.isHidden(name) {
			continue
		}
		if r.gitignored(filepath.Join(dir, name), true) {
			continue
		}
		admitted = append(admitted, name)
	}
	return admitted
}

// Retain reports whether a file named name in dir (relative to the root) is
// consolidated.
func (r *Rules) Retain(dir, name string) bool {
	if _, skip := r.excluded[name]; skip {
		return false
	}
	if !r.hasAllowedExtension(name) {
		return false
	}
	return !r.gitignored(filepath.Join(dir, name), false)
}

func (r *Rules) hasAllowedExtension(name string) bool {
	for _, ext := range r.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// isHidden checks if a directory name starts with the hidden marker.
func (r *Rules) isHidden(name string) bool {
	return r.hidden != "" && strings.HasPrefix(name, r.hidden)
}

func (r *Rules) gitignored(rel string, isDir bool) bool {
	if r.ignoreMatcher == nil {
		return false
	}
	// The matcher wants the full path it was created against.
	return r.ignoreMatcher.Match(filepath.Join(r.root, rel), isDir)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
