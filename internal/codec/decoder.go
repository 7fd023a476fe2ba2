// Package codec implements the (de)serialization engines: raw wire
// documents in, identity-tracked resource graphs out, and back again.
package codec

import (
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/codec/options"
	"github.com/jsonapi-tools/wiremap/internal/resource"
	"github.com/jsonapi-tools/wiremap/internal/schema"
	"github.com/jsonapi-tools/wiremap/internal/wire"
)

// Result is the outcome of a successful decode.
type Result struct {
	// Store owns every instance touched by the pass: primary resources,
	// included resources, and placeholders created from linkage.
	Store *resource.Store

	// Primary holds the document's primary resources in document order.
	// Empty for null or empty-array data sections.
	Primary []*resource.Resource

	// Shape records whether the document's data section was singular or
	// plural; callers use it to expose one resource versus a sequence.
	Shape wire.Shape

	// Pagination holds the document-level page links, if any.
	Pagination resource.Pagination
}

// One returns the single primary resource of a singular document.
func (r *Result) One() (*resource.Resource, bool) {
	if r.Shape != wire.ShapeOne || len(r.Primary) == 0 {
		return nil, false
	}
	return r.Primary[0], true
}

// Decode deserializes a raw document into a fresh identity store.
func Decode(raw []byte, registry *schema.Registry, opt ...options.DecodeOption) (*Result, error) {
	return DecodeInto(raw, registry, resource.NewStore(), opt...)
}

// DecodeInto deserializes a raw document, merging results into the supplied
// store so outstanding references to already-loaded resources stay valid.
//
// Exactly one of the result or the error is non-nil. Error-shaped and
// unrecognizable documents surface as a *Error decoded from the payload;
// a resource object whose type has no registered shape is a hard failure
// wrapping ErrTypeNotRegistered.
func DecodeInto(
	raw []byte,
	registry *schema.Registry,
	store *resource.Store,
	opt ...options.DecodeOption,
) (*Result, error) {
	opts, err := options.NewDecodeOptions(opt...)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = resource.NewStore()
	}

	doc, err := wire.ParseDocument(raw)
	if err != nil {
		// Unparseable or unrecognized payloads route to the error
		// decoder: the transport may have handed us an error body.
		return nil, DecodeError(raw, 0)
	}
	if doc.Shape == wire.ShapeErrors {
		return nil, DecodeError(raw, 0)
	}

	result := &Result{
		Store: store,
		Shape: doc.Shape,
	}

	// Primary data section.
	if opts.MapOntoFirstResource {
		target, ok := store.First()
		if ok && len(doc.Resources) > 0 {
			if err := mergeOnto(target, doc.Resources[0], registry, store); err != nil {
				return nil, err
			}
			result.Primary = append(result.Primary, target)
		}
	} else {
		for _, obj := range doc.Resources {
			r, err := materialize(obj, registry, store)
			if err != nil {
				return nil, err
			}
			result.Primary = append(result.Primary, r)
		}
	}

	// Included resources join the store even when nothing references them.
	for _, obj := range doc.Included {
		if _, err := materialize(obj, registry, store); err != nil {
			return nil, err
		}
	}

	result.Pagination = resource.Pagination{
		First: doc.Links.First,
		Last:  doc.Links.Last,
		Prev:  doc.Links.Prev,
		Next:  doc.Links.Next,
	}

	return result, nil
}

// materialize resolves the target instance for a resource object by
// identity and populates it from the object's fields. Resolution is
// idempotent: a later object for the same (type, id) updates the instance
// created by an earlier one.
func materialize(
	obj wire.ResourceObject,
	registry *schema.Registry,
	store *resource.Store,
) (*resource.Resource, error) {
	desc, err := registry.Lookup(obj.Type)
	if err != nil {
		return nil, fmt.Errorf("cannot deserialize resource object: %w", err)
	}

	r := store.Resolve(obj.Type, obj.ID)
	if err := populate(r, obj, desc, registry, store); err != nil {
		return nil, err
	}
	return r, nil
}

// mergeOnto merges a resource object's fields onto a specific instance,
// bypassing identity resolution for the instance itself. Used when the
// server echoes back an updated resource without guaranteeing a matching
// id; a server-allocated id is adopted when the instance has none, and the
// store is re-keyed so later decodes of that identity land on the same
// instance.
func mergeOnto(
	target *resource.Resource,
	obj wire.ResourceObject,
	registry *schema.Registry,
	store *resource.Store,
) error {
	desc, err := registry.Lookup(obj.Type)
	if err != nil {
		return fmt.Errorf("cannot deserialize resource object: %w", err)
	}

	if target.ID() == "" && obj.ID != "" {
		prevID := target.ID()
		target.SetID(obj.ID)
		if err := store.Rekey(target, prevID); err != nil {
			return fmt.Errorf("cannot adopt id of %s/%s: %w", obj.Type, obj.ID, err)
		}
	}

	return populate(target, obj, desc, registry, store)
}

func populate(
	r *resource.Resource,
	obj wire.ResourceObject,
	desc schema.Descriptor,
	registry *schema.Registry,
	store *resource.Store,
) error {
	r.Materialize()

	// Attributes: unknown wire keys are ignored for forward compatibility,
	// and declared attributes absent from the object leave the prior value
	// untouched.
	for _, attr := range desc.Attributes {
		raw, present := obj.Attributes[attr.WireKey()]
		if !present {
			continue
		}

		value, err := coerce(attr.Kind, raw)
		if err != nil {
			return fmt.Errorf("attribute %q of %s/%s: %w", attr.Name, obj.Type, obj.ID, err)
		}
		r.SyncSet(attr.Name, value)
	}

	// Relationships: linkage resolves through the store so shared and
	// cyclic references land on the same instance. A referenced resource
	// missing from included becomes a placeholder, filled in by a later
	// pass. Linkage to an unregistered type is a hard failure: no shape
	// exists to ever interpret it.
	for _, rel := range desc.Relationships {
		entry, present := obj.Relationships[rel.WireKey()]
		if !present {
			continue
		}

		if rel.ToMany {
			linkages := entry.Many
			if !entry.IsMany && entry.One != nil {
				// Tolerate single-object linkage on a declared to-many.
				linkages = []wire.Linkage{*entry.One}
			}

			targets := make([]*resource.Resource, 0, len(linkages))
			for _, l := range linkages {
				target, err := resolveLinkage(l, registry, store)
				if err != nil {
					return fmt.Errorf("relationship %q of %s/%s: %w", rel.Name, obj.Type, obj.ID, err)
				}
				targets = append(targets, target)
			}
			r.SyncToMany(rel.Name, targets)
			continue
		}

		if entry.One == nil {
			// Explicit null: clear the reference.
			r.SyncToOne(rel.Name, nil)
			continue
		}

		target, err := resolveLinkage(*entry.One, registry, store)
		if err != nil {
			return fmt.Errorf("relationship %q of %s/%s: %w", rel.Name, obj.Type, obj.ID, err)
		}
		r.SyncToOne(rel.Name, target)
	}

	return nil
}

func resolveLinkage(l wire.Linkage, registry *schema.Registry, store *resource.Store) (*resource.Resource, error) {
	if _, err := registry.Lookup(l.Type); err != nil {
		return nil, err
	}
	return store.Resolve(l.Type, l.ID), nil
}
