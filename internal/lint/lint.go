// Package lint checks raw documents against a JSON Schema of the JSON:API
// top-level shape, giving actionable diagnostics before decoding. The codec
// does not depend on it; it exists for the CLI's check command.
package lint

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the recognized top-level document shapes: a data
// document (resource object, array, or null, plus optional included and
// links) or an errors document.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "oneOf": [
    {
      "required": ["data"],
      "properties": {
        "data": {
          "oneOf": [
            {"type": "null"},
            {"$ref": "#/definitions/resource"},
            {"type": "array", "items": {"$ref": "#/definitions/resource"}}
          ]
        },
        "included": {
          "type": "array",
          "items": {"$ref": "#/definitions/resource"}
        },
        "links": {"type": ["object", "null"]}
      }
    },
    {
      "required": ["errors"],
      "properties": {
        "errors": {
          "type": "array",
          "items": {"type": "object"}
        }
      },
      "not": {"required": ["data"]}
    }
  ],
  "definitions": {
    "linkage": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"type": "string"},
        "id": {"type": "string"}
      }
    },
    "resource": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"type": "string", "minLength": 1},
        "id": {"type": "string"},
        "attributes": {"type": "object"},
        "relationships": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "properties": {
              "data": {
                "oneOf": [
                  {"type": "null"},
                  {"$ref": "#/definitions/linkage"},
                  {"type": "array", "items": {"$ref": "#/definitions/linkage"}}
                ]
              }
            }
          }
        }
      }
    }
  }
}`

// Issue is a single structural problem found in a document.
type Issue struct {
	// Field is the document location, e.g. 'data.0.relationships'.
	Field string

	// Description explains what is wrong at that location.
	Description string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// Check validates raw document bytes against the document schema. A nil
// issue slice means the document is structurally sound. The error is
// reserved for input that is not JSON at all.
func Check(raw []byte) ([]Issue, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("document is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]Issue, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, Issue{
			Field:       e.Field(),
			Description: e.Description(),
		})
	}
	return issues, nil
}
