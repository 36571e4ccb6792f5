package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default tunables. They are only ever read through a Config value.
const (
	defaultOutputName   = "projeto_consolidado.txt"
	defaultHiddenPrefix = "."
	packageLockName     = "package-lock.json"
)

var (
	defaultExtensions = []string{
		".ts", ".js", ".json", ".prisma", ".env", ".md", ".yaml", ".cs", ".py", ".vue",
	}
	defaultIgnoredDirs = []string{
		"node_modules", ".git", "dist", "build", ".vercel", "coverage", "bin", "obj", ".vs",
	}
)

// Config is the immutable set of rules a Consolidator runs with.
// Build it with DefaultConfig or LoadConfig; the slices are copied on the way in.
type Config struct {
	Extensions    []string // ordered suffix allow-list, case-sensitive
	IgnoredDirs   []string // directory names never descended into
	ExcludedNames []string // file names always skipped
	HiddenPrefix  string   // directory names starting with this are skipped
	OutputName    string
	OutputDir     string // where OutputName is created; "" means the working directory

	RespectGitignore bool
	CountTokens      bool
	TokenizerType    string
	TokenizerModel   string
}

// DefaultConfig returns the built-in rules. selfName is the running tool's own
// file name; it joins the excluded names when non-empty.
func DefaultConfig(selfName string) Config {
	excluded := []string{defaultOutputName, packageLockName}
	if selfName != "" {
		excluded = append([]string{selfName}, excluded...)
	}
	return Config{
		Extensions:    append([]string(nil), defaultExtensions...),
		IgnoredDirs:   append([]string(nil), defaultIgnoredDirs...),
		ExcludedNames: excluded,
		HiddenPrefix:  defaultHiddenPrefix,
		OutputName:    defaultOutputName,
		TokenizerType: "tiktoken",
	}
}

// OutputPath is where the document is written.
func (c Config) OutputPath() string {
	if c.OutputDir == "" {
		return c.OutputName
	}
	return filepath.Join(c.OutputDir, c.OutputName)
}

// setConfigDefaults registers the built-in rules as viper defaults.
func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("extensions", defaultExtensions)
	v.SetDefault("ignore_dirs", defaultIgnoredDirs)
	v.SetDefault("exclude_files", []string{packageLockName})
	v.SetDefault("hidden_prefix", defaultHiddenPrefix)
	v.SetDefault("output", defaultOutputName)
	v.SetDefault("gitignore", false)
	v.SetDefault("tokens", false)
	v.SetDefault("tokenizer", "tiktoken")
	v.SetDefault("model", "")
}

// readConfigFile loads an explicit file when given, otherwise
// $HOME/.config/consolidar/config.toml. The working directory is never searched:
// a project's own config.toml must not steer the run. A missing file is not an error.
func readConfigFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "consolidar"))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("CONSOLIDAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// LoadConfig freezes the current viper state into a Config.
func LoadConfig(v *viper.Viper, selfName string) (Config, error) {
	cfg := DefaultConfig(selfName)

	cfg.Extensions = cleanList(v.GetStringSlice("extensions"))
	if len(cfg.Extensions) == 0 {
		return Config{}, fmt.Errorf("config: extensions must not be empty")
	}
	cfg.IgnoredDirs = cleanList(v.GetStringSlice("ignore_dirs"))
	cfg.HiddenPrefix = v.GetString("hidden_prefix")

	out := strings.TrimSpace(v.GetString("output"))
	if out == "" || out != filepath.Base(out) {
		return Config{}, fmt.Errorf("config: output must be a plain file name, got %q", out)
	}
	cfg.OutputName = out

	excluded := []string{}
	if selfName != "" {
		excluded = append(excluded, selfName)
	}
	excluded = append(excluded, cfg.OutputName)
	excluded = append(excluded, cleanList(v.GetStringSlice("exclude_files"))...)
	cfg.ExcludedNames = excluded

	cfg.RespectGitignore = v.GetBool("gitignore")
	cfg.CountTokens = v.GetBool("tokens")
	cfg.TokenizerType = v.GetString("tokenizer")
	cfg.TokenizerModel = v.GetString("model")
	return cfg, nil
}

// cleanList trims entries and drops empty ones. Viper hands env values over as a
// single space-separated string, so comma separated values are split here too.
func cleanList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
