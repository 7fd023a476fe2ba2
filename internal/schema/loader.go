package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// File is the on-disk schema declaration decoded from TOML or YAML.
type File struct {
	Types []TypeEntry `json:"types" toml:"types" yaml:"types"`
}

// TypeEntry declares a single resource shape in a schema file.
type TypeEntry struct {
	// Type is the wire type name, e.g. 'articles'.
	Type string `json:"type" toml:"type" yaml:"type"`

	Attributes    []AttributeEntry    `json:"attributes,omitempty"    toml:"attributes,omitempty"    yaml:"attributes,omitempty"`
	Relationships []RelationshipEntry `json:"relationships,omitempty" toml:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// AttributeEntry declares an attribute. Tracked defaults to true when
// omitted, matching programmatic descriptor construction.
type AttributeEntry struct {
	Name    string `json:"name"              toml:"name"              yaml:"name"`
	Key     string `json:"key,omitempty"     toml:"key,omitempty"     yaml:"key,omitempty"`
	Kind    string `json:"kind"              toml:"kind"              yaml:"kind"`
	Tracked *bool  `json:"tracked,omitempty" toml:"tracked,omitempty" yaml:"tracked,omitempty"`
}

// RelationshipEntry declares a relationship. An empty target type means the
// relationship is polymorphic.
type RelationshipEntry struct {
	Name   string `json:"name"              toml:"name"              yaml:"name"`
	Key    string `json:"key,omitempty"     toml:"key,omitempty"     yaml:"key,omitempty"`
	ToMany bool   `json:"toMany,omitempty"  toml:"to_many,omitempty" yaml:"to_many,omitempty"`
	Type   string `json:"type,omitempty"    toml:"type,omitempty"    yaml:"type,omitempty"`
}

// DefaultLoader loads schema files from the local filesystem.
type DefaultLoader struct{}

// Loader builds a populated registry from a schema file path.
type Loader interface {
	Load(path string) (*Registry, error)
}

// Initializer writes a skeleton schema file.
type Initializer interface {
	Init(path string) error
}

var (
	_ Loader      = (*DefaultLoader)(nil)
	_ Initializer = (*DefaultLoader)(nil)
)

const skeletonSchema = `# wiremap schema file.
# Declare one [[types]] table per wire type.

[[types]]
type = "examples"

  [[types.attributes]]
  name = "title"
  kind = "string"
`

// Init creates a skeleton schema file at the given path, refusing to
// overwrite an existing one.
func (l *DefaultLoader) Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(skeletonSchema), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads, decodes, and validates a schema file, returning a registry
// populated with its declared types. The decoder is selected by file
// extension: .toml, or .yaml/.yml.
func (l *DefaultLoader) Load(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", errors.ErrSchemaLoadFailed)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: schema file cannot be found, run: 'wiremap init'", errors.ErrSchemaLoadFailed)
		}
		return nil, fmt.Errorf("%w: failed to read schema file (%s): %w", errors.ErrSchemaLoadFailed, path, err)
	}

	var file File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("%w: failed to decode schema from file (%s): %w", errors.ErrSchemaLoadFailed, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("%w: failed to decode schema from file (%s): %w", errors.ErrSchemaLoadFailed, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported schema file extension %q", errors.ErrSchemaLoadFailed, ext)
	}

	if len(file.Types) == 0 {
		return nil, fmt.Errorf("%w: schema file declares no types (%s)", errors.ErrSchemaLoadFailed, path)
	}

	registry, err := NewRegistry(file.Descriptors()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrSchemaLoadFailed, err)
	}

	return registry, nil
}

// Descriptors converts the file entries into descriptor values. Validation
// happens at registration time.
func (f File) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(f.Types))
	for _, t := range f.Types {
		d := Descriptor{Type: strings.TrimSpace(t.Type)}

		for _, a := range t.Attributes {
			d.Attributes = append(d.Attributes, Attribute{
				Name:      strings.TrimSpace(a.Name),
				Key:       strings.TrimSpace(a.Key),
				Kind:      Kind(strings.ToLower(strings.TrimSpace(a.Kind))),
				Untracked: a.Tracked != nil && !*a.Tracked,
			})
		}

		for _, r := range t.Relationships {
			d.Relationships = append(d.Relationships, Relationship{
				Name:   strings.TrimSpace(r.Name),
				Key:    strings.TrimSpace(r.Key),
				ToMany: r.ToMany,
				Type:   strings.TrimSpace(r.Type),
			})
		}

		out = append(out, d)
	}
	return out
}
