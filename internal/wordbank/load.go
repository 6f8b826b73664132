package wordbank

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk layout of a word bank. JSON documents parse too,
// since YAML is a superset of JSON.
type file struct {
	Units []Unit `yaml:"units"`
}

// Load reads a word bank from a YAML or JSON file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("word bank %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a word bank document. Unknown fields are rejected so that
// typos in hand-edited files surface early.
func Parse(data []byte) (*Bank, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoUnits
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	return New(f.Units)
}

// LoadOrDefault loads the bank at path, or returns the built-in bank when
// path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
