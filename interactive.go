package main

import (
	"errors"
	"fmt"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// errPickAborted is returned when the user leaves the picker without choosing.
var errPickAborted = errors.New("selection aborted")

// candidateDirs lists "." and every directory below start that a run would
// enter, in traversal order.
func candidateDirs(fsys FileSystem, rules *Rules, start string) ([]string, error) {
	candidates := []string{start}
	var visit func(rel string) error
	visit = func(rel string) error {
		dirs, _, err := fsys.ListDir(filepath.Join(start, rel))
		if err != nil {
			return err
		}
		for _, name := range rules.AdmissibleDirs(rel, dirs) {
			child := filepath.Join(rel, name)
			candidates = append(candidates, filepath.Join(start, child))
			if err := visit(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit("."); err != nil {
		return nil, fmt.Errorf("error scanning for directories: %w", err)
	}
	return candidates, nil
}

// fuzzyPrompter picks the root with a fuzzy finder over the candidate
// directories instead of reading a typed line.
type fuzzyPrompter struct {
	fsys  FileSystem
	rules *Rules
	start string
}

func (p *fuzzyPrompter) PromptLine(message string) (string, error) {
	candidates, err := candidateDirs(p.fsys, p.rules, p.start)
	if err != nil {
		return "", err
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPromptString(message),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Escolha a pasta do projeto. Enter confirma, Esc cancela."
			}
			_, files, err := p.fsys.ListDir(candidates[i])
			if err != nil {
				return fmt.Sprintf("Caminho: %s\nErro ao listar: %v", candidates[i], err)
			}
			retained := 0
			for _, name := range files {
				if p.rules.Retain(".", name) {
					retained++
				}
			}
			return fmt.Sprintf("Caminho: %s\nArquivos: %d\nArquivos consolidáveis aqui: %d", candidates[i], len(files), retained)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errPickAborted
		}
		return "", fmt.Errorf("fuzzy finder error: %w", err)
	}
	return candidates[idx], nil
}
