package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// ResourceObject is a single resource in its wire form.
type ResourceObject struct {
	Type          string                        `json:"type"`
	ID            string                        `json:"id,omitempty"`
	Attributes    map[string]any                `json:"attributes,omitempty"`
	Relationships map[string]RelationshipObject `json:"relationships,omitempty"`
}

// Linkage is a type+id reference to a resource, expressing a relationship
// without embedding the related resource body.
type Linkage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// RelationshipObject is the wire form of a relationship entry: linkage to
// one resource, to many, or an explicit null for an empty to-one.
//
// One==nil with IsMany==false records an explicit null.
type RelationshipObject struct {
	One    *Linkage
	Many   []Linkage
	IsMany bool
}

// UnmarshalJSON reads the {"data": ...} wrapper, accepting a single linkage
// object, an array of linkage objects, or null.
func (r *RelationshipObject) UnmarshalJSON(raw []byte) error {
	var shadow struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return fmt.Errorf("%w: malformed relationship object: %w", errors.ErrInvalidDocument, err)
	}

	data := bytes.TrimSpace(shadow.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = RelationshipObject{}

	case data[0] == '[':
		var many []Linkage
		if err := json.Unmarshal(data, &many); err != nil {
			return fmt.Errorf("%w: malformed to-many linkage: %w", errors.ErrInvalidDocument, err)
		}
		*r = RelationshipObject{Many: many, IsMany: true}

	case data[0] == '{':
		var one Linkage
		if err := json.Unmarshal(data, &one); err != nil {
			return fmt.Errorf("%w: malformed to-one linkage: %w", errors.ErrInvalidDocument, err)
		}
		*r = RelationshipObject{One: &one}

	default:
		return fmt.Errorf("%w: relationship data must be an object, array, or null", errors.ErrInvalidDocument)
	}

	return nil
}

// MarshalJSON writes the {"data": ...} wrapper. A to-many entry always
// emits an array, never null.
func (r RelationshipObject) MarshalJSON() ([]byte, error) {
	if r.IsMany {
		many := r.Many
		if many == nil {
			many = []Linkage{}
		}
		return json.Marshal(struct {
			Data []Linkage `json:"data"`
		}{Data: many})
	}

	return json.Marshal(struct {
		Data *Linkage `json:"data"`
	}{Data: r.One})
}
