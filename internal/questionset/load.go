package questionset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSet is the YAML shape of a question set file.
type fileSet struct {
	Title      string         `yaml:"title"`
	Categories []CategoryInfo `yaml:"categories"`
	Scale      []ScalePoint   `yaml:"scale"`
	Questions  []Question     `yaml:"questions"`
}

// Load reads and validates a question set file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML (or JSON) question set document.
// Missing title and scale fall back to the built-in ones.
func Parse(data []byte) (*Set, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}
	if err := checkSchema(doc); err != nil {
		return nil, err
	}

	var fs fileSet
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}

	if fs.Title == "" {
		fs.Title = DefaultTitle
	}
	if len(fs.Scale) == 0 {
		fs.Scale = DefaultScale()
	}
	return New(fs.Title, fs.Categories, fs.Scale, fs.Questions)
}
