package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a diorama spec from a YAML file.
func Load(path string) (*DioramaSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec DioramaSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a diorama spec from a project directory.
// It looks for diorama.yaml in the given directory.
func LoadProject(projectDir string) (*DioramaSpec, error) {
	specPath := filepath.Join(projectDir, "diorama.yaml")
	return Load(specPath)
}
