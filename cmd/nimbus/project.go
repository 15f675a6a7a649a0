package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// projectFile is the nimbus.json manifest dropped into a project
// directory. Only the fields the CLI needs are modeled; unknown fields
// survive a read-modify-write cycle server-side, not here.
type projectFile struct {
	Name      string `json:"name"`
	Framework string `json:"framework,omitempty"`
}

const projectFileName = "nimbus.json"

// readProjectName resolves the project name for a directory: the
// nimbus.json manifest when present, otherwise the directory name.
func readProjectName(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(absDir, projectFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return filepath.Base(absDir), nil
		}
		return "", fmt.Errorf("failed to read %s: %w", projectFileName, err)
	}

	var pf projectFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", projectFileName, err)
	}
	if pf.Name == "" {
		return filepath.Base(absDir), nil
	}
	return pf.Name, nil
}

// writeProjectFile creates a nimbus.json manifest in dir.
func writeProjectFile(dir string, pf projectFile) error {
	data, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := filepath.Join(dir, projectFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", projectFileName, err)
	}
	return nil
}
