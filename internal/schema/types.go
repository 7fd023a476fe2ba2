// Package schema declares resource shape descriptors and the registry that
// maps wire type names to them. A descriptor tells the codec which fields a
// resource of a given type carries on the wire and how to interpret them.
package schema

import (
	"fmt"
	"strings"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// Kind is the declared value kind of an attribute. The deserializer coerces
// incoming wire values to the declared kind; the serializer emits them in
// their canonical wire form.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindTime   Kind = "time"

	// KindRaw passes values through without coercion.
	KindRaw Kind = "raw"
)

// knownKinds holds every valid Kind for descriptor validation.
var knownKinds = map[Kind]struct{}{
	KindString: {},
	KindInt:    {},
	KindFloat:  {},
	KindBool:   {},
	KindTime:   {},
	KindRaw:    {},
}

// Attribute describes a single attribute of a resource shape.
type Attribute struct {
	// Name is the attribute name used on resource instances.
	Name string

	// Key is the wire key inside the document's attributes object.
	// Empty means same as Name.
	Key string

	// Kind is the declared value kind.
	Kind Kind

	// Untracked opts the attribute out of dirty tracking: untracked
	// attributes are only serialized on full (non dirty-only) encodes.
	// The zero value tracks, so plain descriptor literals participate.
	Untracked bool
}

// WireKey returns the key used for this attribute on the wire.
func (a Attribute) WireKey() string {
	if a.Key != "" {
		return a.Key
	}
	return a.Name
}

// Relationship describes a single relationship of a resource shape.
type Relationship struct {
	// Name is the relationship name used on resource instances.
	Name string

	// Key is the wire key inside the document's relationships object.
	// Empty means same as Name.
	Key string

	// ToMany selects to-many cardinality; false means to-one.
	ToMany bool

	// Type is the wire type name of the related resource. Empty means
	// polymorphic: linkage may reference any registered type.
	Type string
}

// WireKey returns the key used for this relationship on the wire.
func (r Relationship) WireKey() string {
	if r.Key != "" {
		return r.Key
	}
	return r.Name
}

// Descriptor associates a wire type name with the set of fields a resource
// of that type carries. Descriptors are immutable once registered.
type Descriptor struct {
	// Type is the wire type name. Unique within a registry.
	Type string

	Attributes    []Attribute
	Relationships []Relationship
}

// Validate checks structural soundness of the descriptor: a non-empty type
// name, known attribute kinds, and no duplicate field names across
// attributes and relationships.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Type) == "" {
		return fmt.Errorf("%w: type name is required", errors.ErrInvalidDescriptor)
	}

	seen := make(map[string]struct{}, len(d.Attributes)+len(d.Relationships))
	for _, a := range d.Attributes {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: type %q: attribute name is required", errors.ErrInvalidDescriptor, d.Type)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: type %q: duplicate field %q", errors.ErrInvalidDescriptor, d.Type, a.Name)
		}
		seen[a.Name] = struct{}{}

		if _, ok := knownKinds[a.Kind]; !ok {
			return fmt.Errorf("%w: type %q: attribute %q has unknown kind %q",
				errors.ErrInvalidDescriptor, d.Type, a.Name, a.Kind)
		}
	}

	for _, r := range d.Relationships {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("%w: type %q: relationship name is required", errors.ErrInvalidDescriptor, d.Type)
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("%w: type %q: duplicate field %q", errors.ErrInvalidDescriptor, d.Type, r.Name)
		}
		seen[r.Name] = struct{}{}
	}

	return nil
}

// Attribute returns the named attribute declaration.
func (d Descriptor) Attribute(name string) (Attribute, bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Relationship returns the named relationship declaration.
func (d Descriptor) Relationship(name string) (Relationship, bool) {
	for _, r := range d.Relationships {
		if r.Name == name {
			return r, true
		}
	}
	return Relationship{}, false
}
