package kb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a YAML cuisine catalog.
type catalogFile struct {
	Cuisines []CuisineProfile `yaml:"cuisines"`
}

// LoadFile reads a YAML cuisine catalog and validates it like New does.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Base from YAML catalog bytes.
func Parse(data []byte) (*Base, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	b, err := New(f.Cuisines...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return b, nil
}
