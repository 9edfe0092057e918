package template

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/robinvdvleuten/pinto/match"
)

// Store holds the templates of one file, keyed by label.
type Store struct {
	templates map[string]*Template
	labels    []string
}

// Load reads and parses a template file. A missing file yields an empty
// store, so a workspace without templates still supports plain entry.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Parse(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return store, nil
}

// Parse decodes YAML template definitions. Top-level keys starting with "_"
// are anchor scratchpads and are skipped; aliases are expanded during
// decoding, so templates never share structure afterwards. A malformed
// template fails the whole parse with a *TemplateFormatError naming it.
func Parse(data []byte) (*Store, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	store := &Store{templates: make(map[string]*Template, len(raw))}
	for name, node := range raw {
		if strings.HasPrefix(name, "_") {
			continue
		}

		t := &Template{}
		if err := node.Decode(t); err != nil {
			return nil, &TemplateFormatError{Name: name, Err: err}
		}
		t.Label = name

		store.templates[name] = t
		store.labels = append(store.labels, name)
	}

	slices.Sort(store.labels)
	return store, nil
}

// Get returns the template with the exact label.
func (s *Store) Get(label string) (*Template, error) {
	t, ok := s.templates[label]
	if !ok {
		return nil, &TemplateNotFoundError{Label: label}
	}
	return t, nil
}

// Search fuzzy-matches the query against all labels.
func (s *Store) Search(query string, cfg match.Config) match.Result {
	return match.Match(query, s.labels, cfg)
}

// Labels returns all template labels in alphabetical order.
func (s *Store) Labels() []string {
	return slices.Clone(s.labels)
}

// Len returns the number of templates in the store.
func (s *Store) Len() int {
	return len(s.templates)
}
