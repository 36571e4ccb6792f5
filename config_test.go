package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setConfigDefaults(v)
	return v
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("node.py")

	assert.Equal(t, []string{".ts", ".js", ".json", ".prisma", ".env", ".md", ".yaml", ".cs", ".py", ".vue"}, cfg.Extensions)
	assert.ElementsMatch(t, []string{"node_modules", ".git", "dist", "build", ".vercel", "coverage", "bin", "obj", ".vs"}, cfg.IgnoredDirs)
	assert.Equal(t, []string{"node.py", "projeto_consolidado.txt", "package-lock.json"}, cfg.ExcludedNames)
	assert.Equal(t, ".", cfg.HiddenPrefix)
	assert.Equal(t, "projeto_consolidado.txt", cfg.OutputPath())
	assert.False(t, cfg.RespectGitignore)
}

func TestDefaultConfigDoesNotShareSlices(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.Extensions[0] = ".changed"

	assert.Equal(t, ".ts", DefaultConfig("").Extensions[0])
}

func TestLoadConfigDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig(newTestViper(), "node.py")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig("node.py"), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	v := newTestViper()
	v.Set("extensions", []string{".go", " .mod ", ""})
	v.Set("ignore_dirs", "vendor,testdata")
	v.Set("output", "bundle.txt")
	v.Set("gitignore", true)

	cfg, err := LoadConfig(v, "consolidar")
	require.NoError(t, err)

	assert.Equal(t, []string{".go", ".mod"}, cfg.Extensions)
	assert.Equal(t, []string{"vendor", "testdata"}, cfg.IgnoredDirs)
	assert.Equal(t, []string{"consolidar", "bundle.txt", "package-lock.json"}, cfg.ExcludedNames)
	assert.Equal(t, "bundle.txt", cfg.OutputPath())
	assert.True(t, cfg.RespectGitignore)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	v := newTestViper()
	v.Set("extensions", []string{})
	_, err := LoadConfig(v, "")
	assert.Error(t, err)

	v = newTestViper()
	v.Set("output", filepath.Join("out", "doc.txt"))
	_, err = LoadConfig(v, "")
	assert.Error(t, err)
}

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("extensions = [\".rs\"]\ngitignore = true\n"), 0644))

	v := newTestViper()
	used, err := readConfigFile(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, []string{".rs"}, cfg.Extensions)
	assert.True(t, cfg.RespectGitignore)
}

func TestReadConfigFileMissingIsNotAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	used, err := readConfigFile(newTestViper(), "")
	require.NoError(t, err)
	assert.Empty(t, used)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("CONSOLIDAR_OUTPUT", "env.txt")

	v := newTestViper()
	_, err := readConfigFile(v, "")
	require.NoError(t, err)

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, "env.txt", cfg.OutputName)
}

func TestReadConfigFileIgnoresWorkingDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	chdir(t, work)
	require.NoError(t, os.WriteFile(filepath.Join(work, "config.toml"),
		[]byte("output = \"notes.md\"\nextensions = [\".toml\"]\n"), 0644))

	v := newTestViper()
	used, err := readConfigFile(v, "")
	require.NoError(t, err)
	assert.Empty(t, used)

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(""), cfg)
}

func TestReadConfigFileFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())
	dir := filepath.Join(home, ".config", "consolidar")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("gitignore = true\n"), 0644))

	v := newTestViper()
	used, err := readConfigFile(v, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), used)

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)
	assert.True(t, cfg.RespectGitignore)
}
