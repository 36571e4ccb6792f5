package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"gopkg.in/yaml.v3"
)

// writeManifest saves res as YAML at path.
func writeManifest(res *RunResult, path string) error {
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("error encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing manifest %s: %w", path, err)
	}
	return nil
}

// readManifest loads a manifest written by writeManifest.
func readManifest(path string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}
	var res RunResult
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}
	return &res, nil
}

// copyDocument puts the finished document on the system clipboard.
func copyDocument(outputPath string) error {
	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", outputPath, err)
	}
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("error writing to clipboard: %w", err)
	}
	return nil
}
