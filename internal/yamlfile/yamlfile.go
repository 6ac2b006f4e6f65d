// Package yamlfile lists and decodes content directories that hold one YAML
// document per file.
package yamlfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// List returns the .yaml and .yml files directly inside dir, sorted by name.
// Subdirectories and other files are skipped; extensions match case-insensitively.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the matching paths (possibly empty) or a non-nil error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Decode reads the file at path into v.
func Decode(path string, v any) error {
	return decode(path, v, false)
}

// DecodeStrict reads the file at path into v, rejecting unknown fields.
func DecodeStrict(path string, v any) error {
	return decode(path, v, true)
}

func decode(path string, v any, strict bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
