// Package wire defines the JSON:API-shaped document types exchanged with a
// server and the top-level shape detection used by the codec.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// Shape discriminates the recognized top-level document shapes.
type Shape int

const (
	// ShapeNull is a singular document whose data member is null.
	ShapeNull Shape = iota

	// ShapeOne is a singular document: data is a single resource object.
	ShapeOne

	// ShapeMany is a plural document: data is an array of resource objects.
	ShapeMany

	// ShapeErrors is an error document: a top-level errors array instead
	// of data.
	ShapeErrors
)

func (s Shape) String() string {
	switch s {
	case ShapeNull:
		return "null"
	case ShapeOne:
		return "one"
	case ShapeMany:
		return "many"
	case ShapeErrors:
		return "errors"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Document is a parsed wire document. Resources holds the primary data
// section: zero entries for ShapeNull, one for ShapeOne, any number for
// ShapeMany.
type Document struct {
	Shape     Shape
	Resources []ResourceObject
	Included  []ResourceObject
	Errors    []ErrorObject
	Links     Links
}

// ParseDocument parses raw bytes into a Document, classifying the top-level
// shape. Payloads that are not JSON objects, or that carry neither a data
// member nor an errors array, fail with ErrInvalidDocument.
//
// The top level decodes into a member map first: a data member holding a
// literal null must stay distinguishable from an absent data member, which
// a pointer field cannot do.
func ParseDocument(raw []byte) (*Document, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidDocument, err)
	}
	if members == nil {
		return nil, fmt.Errorf("%w: document must be an object", errors.ErrInvalidDocument)
	}

	doc := &Document{}

	if rawIncluded, present := members["included"]; present {
		if err := json.Unmarshal(rawIncluded, &doc.Included); err != nil {
			return nil, fmt.Errorf("%w: malformed included array: %w", errors.ErrInvalidDocument, err)
		}
	}
	if rawLinks, present := members["links"]; present {
		if err := json.Unmarshal(rawLinks, &doc.Links); err != nil {
			return nil, err
		}
	}

	if rawErrors, present := members["errors"]; present {
		doc.Shape = ShapeErrors
		if err := json.Unmarshal(rawErrors, &doc.Errors); err != nil {
			return nil, fmt.Errorf("%w: malformed errors array: %w", errors.ErrInvalidDocument, err)
		}
		return doc, nil
	}

	rawData, present := members["data"]
	if !present {
		return nil, fmt.Errorf("%w: missing top-level data member", errors.ErrInvalidDocument)
	}

	data := bytes.TrimSpace(rawData)
	switch {
	case bytes.Equal(data, []byte("null")):
		doc.Shape = ShapeNull

	case len(data) > 0 && data[0] == '[':
		doc.Shape = ShapeMany
		if err := json.Unmarshal(data, &doc.Resources); err != nil {
			return nil, fmt.Errorf("%w: malformed data array: %w", errors.ErrInvalidDocument, err)
		}

	case len(data) > 0 && data[0] == '{':
		doc.Shape = ShapeOne
		var one ResourceObject
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("%w: malformed resource object: %w", errors.ErrInvalidDocument, err)
		}
		doc.Resources = []ResourceObject{one}

	default:
		return nil, fmt.Errorf("%w: data member must be an object, array, or null", errors.ErrInvalidDocument)
	}

	return doc, nil
}

// MarshalJSON emits the document in its wire layout: errors documents carry
// only the errors array, data documents always carry a data member (null,
// object, or array per shape).
func (d *Document) MarshalJSON() ([]byte, error) {
	if d.Shape == ShapeErrors {
		return json.Marshal(struct {
			Errors []ErrorObject `json:"errors"`
		}{Errors: d.Errors})
	}

	shadow := struct {
		Data     any              `json:"data"`
		Included []ResourceObject `json:"included,omitempty"`
		Links    *Links           `json:"links,omitempty"`
	}{
		Included: d.Included,
	}
	if !d.Links.IsZero() {
		shadow.Links = &d.Links
	}

	switch d.Shape {
	case ShapeMany:
		rs := d.Resources
		if rs == nil {
			rs = []ResourceObject{}
		}
		shadow.Data = rs
	case ShapeOne:
		if len(d.Resources) > 0 {
			shadow.Data = d.Resources[0]
		}
	}

	return json.Marshal(shadow)
}
