package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmissibleDirs(t *testing.T) {
	rules, err := NewRules(DefaultConfig(""), t.TempDir())
	require.NoError(t, err)

	got := rules.AdmissibleDirs(".", []string{
		"src", "node_modules", ".git", ".idea", "dist", "build", "bin", "obj",
		"coverage", ".vercel", ".vs", "docs", "builds", "Dist",
	})

	assert.Equal(t, []string{"src", "docs", "builds", "Dist"}, got)
}

func TestRetain(t *testing.T) {
	rules, err := NewRules(DefaultConfig("consolidar"), t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name string
		want bool
	}{
		{"index.ts", true},
		{"component.vue", true},
		{"Program.cs", true},
		{"local.env", true},
		{"config.yaml", true},
		{"config.yml", false},
		{"INDEX.TS", false},
		{"types.d.ts", true},
		{"archive.ts.bak", false},
		{"package-lock.json", false},
		{"projeto_consolidado.txt", false},
		{"projeto_consolidado.txt.lock", false},
		{"consolidar", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Retain(".", tt.name))
		})
	}
}

func TestRetainExcludedNameWinsOverExtension(t *testing.T) {
	cfg := DefaultConfig("build.py")
	rules, err := NewRules(cfg, t.TempDir())
	require.NoError(t, err)

	assert.False(t, rules.Retain(".", "build.py"))
	assert.True(t, rules.Retain(".", "setup.py"))
}

func TestCustomHiddenPrefix(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.HiddenPrefix = "_"
	cfg.IgnoredDirs = nil
	rules, err := NewRules(cfg, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{".git", "src"}, rules.AdmissibleDirs(".", []string{"_private", ".git", "src"}))
}

func TestGitignoreRules(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("tmp/\n*.gen.ts\n"), 0644))

	cfg := DefaultConfig("")
	cfg.RespectGitignore = true
	rules, err := NewRules(cfg, root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src"}, rules.AdmissibleDirs(".", []string{"tmp", "src"}))
	assert.False(t, rules.Retain("src", "api.gen.ts"))
	assert.True(t, rules.Retain("src", "api.ts"))
}

func TestGitignoreMissingFile(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.RespectGitignore = true
	rules, err := NewRules(cfg, t.TempDir())
	require.NoError(t, err)

	assert.True(t, rules.Retain(".", "a.ts"))
}
