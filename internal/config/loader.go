package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileNames lists the config files searched in the workspace, in order.
var FileNames = []string{
	".github/releasebump.yml",
	".github/releasebump.yaml",
	"releasebump.yml",
	"releasebump.yaml",
}

// LoadFromFile reads and parses a releasebump configuration file.
func LoadFromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses releasebump configuration from raw YAML bytes.
func LoadFromBytes(data []byte) (*Source, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &src, nil
}

// FindConfigFile returns the first known config file present in dir, or an
// empty string if there is none.
func FindConfigFile(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
