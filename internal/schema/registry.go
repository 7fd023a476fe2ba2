package schema

import (
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// Registry maps wire type names to shape descriptors. It is the single
// source of truth the codec consults when interpreting resource objects.
//
// The registry is not safe for mutation concurrent with reads: register all
// expected types at startup, before any (de)serialization runs.
type Registry struct {
	descriptors map[string]Descriptor
	order       []string
}

// NewRegistry returns an empty registry, optionally pre-populated with the
// given descriptors. Registration order is preserved for iteration.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a shape keyed by its wire type name. Registering a type name
// that is already present is a configuration bug and fails.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, exists := r.descriptors[d.Type]; exists {
		return fmt.Errorf("%w: %s", errors.ErrTypeRegistered, d.Type)
	}

	r.descriptors[d.Type] = d
	r.order = append(r.order, d.Type)
	return nil
}

// Unregister removes the shape for the given wire type name, failing when
// the type was never registered.
func (r *Registry) Unregister(typeName string) error {
	if _, exists := r.descriptors[typeName]; !exists {
		return fmt.Errorf("%w: %s", errors.ErrTypeNotRegistered, typeName)
	}

	delete(r.descriptors, typeName)
	for i, t := range r.order {
		if t == typeName {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup returns the descriptor for the given wire type name. An
// unregistered type can never be deserialized meaningfully, so absence is
// an error rather than an ok-bool.
func (r *Registry) Lookup(typeName string) (Descriptor, error) {
	d, exists := r.descriptors[typeName]
	if !exists {
		return Descriptor{}, fmt.Errorf("%w: %s", errors.ErrTypeNotRegistered, typeName)
	}
	return d, nil
}

// Types returns the registered wire type names in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
