package resource

import (
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// Key identifies a resource instance within a store.
type Key struct {
	Type string
	ID   string
}

func (k Key) String() string {
	return k.Type + "/" + k.ID
}

// Store is the deduplicating identity container: at most one instance per
// (type, id). Relationship resolution during decoding always resolves to
// the instance already present for a key, creating a placeholder otherwise,
// so shared and cyclic references never produce copies.
//
// A store is not safe for concurrent mutation; use one store per decoding
// pass unless callers synchronize externally.
type Store struct {
	items map[Key]*Resource
	order []Key
}

// NewStore returns an empty identity store.
func NewStore() *Store {
	return &Store{
		items: make(map[Key]*Resource),
	}
}

// Resolve returns the instance for (typeName, id), creating and registering
// a placeholder when none exists. First write wins: later resolutions of the
// same key return the original instance.
func (s *Store) Resolve(typeName, id string) *Resource {
	key := Key{Type: typeName, ID: id}
	if r, ok := s.items[key]; ok {
		return r
	}

	r := newResource(typeName, id)
	s.items[key] = r
	s.order = append(s.order, key)
	return r
}

// Add registers an application-created instance under its (type, id) key.
// Fails when the key is already taken.
func (s *Store) Add(r *Resource) error {
	key := Key{Type: r.Type(), ID: r.ID()}
	if _, exists := s.items[key]; exists {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateResource, key)
	}

	s.items[key] = r
	s.order = append(s.order, key)
	return nil
}

// Rekey moves an instance registered under (type, prevID) to its current
// id, keeping its registration order position. Later resolutions of the new
// key then return this instance instead of creating a duplicate. Fails when
// the instance is not registered under the previous key or the new key is
// already taken.
func (s *Store) Rekey(r *Resource, prevID string) error {
	oldKey := Key{Type: r.Type(), ID: prevID}
	newKey := Key{Type: r.Type(), ID: r.ID()}
	if oldKey == newKey {
		return nil
	}

	if s.items[oldKey] != r {
		return fmt.Errorf("resource is not registered as %s", oldKey)
	}
	if _, exists := s.items[newKey]; exists {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateResource, newKey)
	}

	delete(s.items, oldKey)
	s.items[newKey] = r
	for i, key := range s.order {
		if key == oldKey {
			s.order[i] = newKey
			break
		}
	}
	return nil
}

// Lookup returns the instance for (typeName, id) if present.
func (s *Store) Lookup(typeName, id string) (*Resource, bool) {
	r, ok := s.items[Key{Type: typeName, ID: id}]
	return r, ok
}

// First returns the earliest-registered instance, if any.
func (s *Store) First() (*Resource, bool) {
	if len(s.order) == 0 {
		return nil, false
	}
	return s.items[s.order[0]], true
}

// Len returns the number of stored instances.
func (s *Store) Len() int {
	return len(s.items)
}

// All returns every stored instance in registration order.
func (s *Store) All() []*Resource {
	out := make([]*Resource, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.items[key])
	}
	return out
}
