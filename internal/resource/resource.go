// Package resource holds typed, identity-tracked resource instances and the
// identity store that owns them. Instances are created either by the codec
// (from wire data) or by application code (for new, unsaved resources).
package resource

import (
	"sort"
)

// Resource is a typed object with an optional stable identifier, attribute
// values, relationship references, and a per-attribute dirty set.
//
// Relationship fields hold pointers into the owning store; they never own a
// private copy of the target. Cyclic graphs are fine: the store owns every
// instance and the whole graph is collected when the store is dropped.
type Resource struct {
	typeName string
	id       string

	attrs  map[string]any
	toOne  map[string]*Resource
	toMany map[string][]*Resource
	dirty  map[string]struct{}

	// placeholder marks an instance known only by identity: referenced by
	// linkage but never materialized from a resource object. A later sync
	// fills it in without breaking references already held by callers.
	placeholder bool
}

// New creates a resource for application use. The id may be empty for
// not-yet-persisted instances.
func New(typeName, id string) *Resource {
	r := newResource(typeName, id)
	r.placeholder = false
	return r
}

func newResource(typeName, id string) *Resource {
	return &Resource{
		typeName:    typeName,
		id:          id,
		attrs:       make(map[string]any),
		toOne:       make(map[string]*Resource),
		toMany:      make(map[string][]*Resource),
		dirty:       make(map[string]struct{}),
		placeholder: true,
	}
}

// Type returns the wire type name.
func (r *Resource) Type() string {
	return r.typeName
}

// ID returns the stable identifier, empty for unsaved instances.
func (r *Resource) ID() string {
	return r.id
}

// SetID assigns the identifier. Used when the server allocates an id for a
// freshly created resource.
func (r *Resource) SetID(id string) {
	r.id = id
}

// Placeholder reports whether this instance carries identity only and has
// never been populated from wire data or local writes.
func (r *Resource) Placeholder() bool {
	return r.placeholder
}

// Set writes an attribute value and marks it dirty.
func (r *Resource) Set(name string, value any) {
	r.attrs[name] = value
	r.dirty[name] = struct{}{}
	r.placeholder = false
}

// Get returns an attribute value. The bool distinguishes "never set" from a
// stored nil.
func (r *Resource) Get(name string) (any, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// SetToOne writes a to-one relationship reference and marks it dirty. A nil
// target clears the relationship.
func (r *Resource) SetToOne(name string, target *Resource) {
	r.setToOne(name, target)
	r.dirty[name] = struct{}{}
	r.placeholder = false
}

// SetToMany writes a to-many relationship reference set and marks it dirty.
func (r *Resource) SetToMany(name string, targets []*Resource) {
	r.toMany[name] = targets
	r.dirty[name] = struct{}{}
	r.placeholder = false
}

// ToOne returns the target of a to-one relationship.
func (r *Resource) ToOne(name string) (*Resource, bool) {
	t, ok := r.toOne[name]
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

// ToMany returns the targets of a to-many relationship.
func (r *Resource) ToMany(name string) ([]*Resource, bool) {
	ts, ok := r.toMany[name]
	return ts, ok
}

// Dirty returns the names of fields changed since the last MarkClean, in
// sorted order.
func (r *Resource) Dirty() []string {
	out := make([]string, 0, len(r.dirty))
	for name := range r.dirty {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsDirty reports whether the named field changed since the last MarkClean.
func (r *Resource) IsDirty(name string) bool {
	_, ok := r.dirty[name]
	return ok
}

// MarkClean clears the dirty set. Called after a successful write to the
// server; never inferred from diffing.
func (r *Resource) MarkClean() {
	r.dirty = make(map[string]struct{})
}

// SyncSet writes an attribute value as the clean baseline, without marking
// it dirty. Used by the codec when populating instances from wire data.
func (r *Resource) SyncSet(name string, value any) {
	r.attrs[name] = value
	delete(r.dirty, name)
	r.placeholder = false
}

// SyncToOne writes a to-one reference as the clean baseline. A nil target
// records an explicit empty relationship.
func (r *Resource) SyncToOne(name string, target *Resource) {
	r.setToOne(name, target)
	delete(r.dirty, name)
	r.placeholder = false
}

// SyncToMany writes a to-many reference set as the clean baseline.
func (r *Resource) SyncToMany(name string, targets []*Resource) {
	r.toMany[name] = targets
	delete(r.dirty, name)
	r.placeholder = false
}

// Materialize records that the instance was populated from a resource
// object, even one carrying no fields. Called by the codec; placeholders
// created purely from relationship linkage never see this.
func (r *Resource) Materialize() {
	r.placeholder = false
}

func (r *Resource) setToOne(name string, target *Resource) {
	if target == nil {
		delete(r.toOne, name)
		return
	}
	r.toOne[name] = target
}

// AttributeNames returns the names of all set attributes, sorted.
func (r *Resource) AttributeNames() []string {
	out := make([]string, 0, len(r.attrs))
	for name := range r.attrs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RelationshipNames returns the names of all populated relationships,
// sorted. Cleared to-one relationships do not appear.
func (r *Resource) RelationshipNames() []string {
	out := make([]string, 0, len(r.toOne)+len(r.toMany))
	for name := range r.toOne {
		out = append(out, name)
	}
	for name := range r.toMany {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
