package codec

import (
	"encoding/json"
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/codec/options"
	"github.com/jsonapi-tools/wiremap/internal/resource"
	"github.com/jsonapi-tools/wiremap/internal/schema"
	"github.com/jsonapi-tools/wiremap/internal/wire"
)

// Encode serializes the given resources into a wire document suitable for a
// write request. A single resource yields a singular data member, several
// yield an array.
//
// Only declared fields are emitted. Attributes that were never set are
// omitted entirely, distinguishing "absent" from a stored null. With
// DirtyOnly, emission is further limited to attributes whose dirty flag is
// set. Relationship linkage is embedded only under the matching
// IncludeToOne/IncludeToMany policy, one level deep, type+id only.
func Encode(
	resources []*resource.Resource,
	registry *schema.Registry,
	opt ...options.EncodeOption,
) (*wire.Document, error) {
	opts, err := options.NewEncodeOptions(opt...)
	if err != nil {
		return nil, err
	}

	objs := make([]wire.ResourceObject, 0, len(resources))
	for _, r := range resources {
		desc, err := registry.Lookup(r.Type())
		if err != nil {
			return nil, fmt.Errorf("cannot serialize resource: %w", err)
		}

		obj, err := encodeResource(r, desc, opts)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}

	doc := &wire.Document{
		Shape:     wire.ShapeMany,
		Resources: objs,
	}
	if len(resources) == 1 {
		doc.Shape = wire.ShapeOne
	}

	return doc, nil
}

// EncodeBytes is Encode followed by JSON marshaling, for callers that want
// the request body directly.
func EncodeBytes(
	resources []*resource.Resource,
	registry *schema.Registry,
	opt ...options.EncodeOption,
) ([]byte, error) {
	doc, err := Encode(resources, registry, opt...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func encodeResource(
	r *resource.Resource,
	desc schema.Descriptor,
	opts options.EncodeOptions,
) (wire.ResourceObject, error) {
	obj := wire.ResourceObject{
		Type: r.Type(),
		ID:   r.ID(),
	}

	for _, attr := range desc.Attributes {
		value, set := r.Get(attr.Name)
		if !set {
			continue
		}
		if opts.DirtyOnly && (attr.Untracked || !r.IsDirty(attr.Name)) {
			continue
		}

		wv, err := wireValue(attr.Kind, value)
		if err != nil {
			return wire.ResourceObject{}, fmt.Errorf("attribute %q of %s/%s: %w", attr.Name, r.Type(), r.ID(), err)
		}

		if obj.Attributes == nil {
			obj.Attributes = make(map[string]any)
		}
		obj.Attributes[attr.WireKey()] = wv
	}

	for _, rel := range desc.Relationships {
		if rel.ToMany {
			if !opts.IncludeToMany {
				continue
			}
			targets, set := r.ToMany(rel.Name)
			if !set {
				continue
			}

			linkages := make([]wire.Linkage, 0, len(targets))
			for _, t := range targets {
				linkages = append(linkages, wire.Linkage{Type: t.Type(), ID: t.ID()})
			}

			if obj.Relationships == nil {
				obj.Relationships = make(map[string]wire.RelationshipObject)
			}
			obj.Relationships[rel.WireKey()] = wire.RelationshipObject{Many: linkages, IsMany: true}
			continue
		}

		if !opts.IncludeToOne {
			continue
		}
		target, set := r.ToOne(rel.Name)
		if !set {
			continue
		}

		if obj.Relationships == nil {
			obj.Relationships = make(map[string]wire.RelationshipObject)
		}
		obj.Relationships[rel.WireKey()] = wire.RelationshipObject{
			One: &wire.Linkage{Type: target.Type(), ID: target.ID()},
		}
	}

	return obj, nil
}
