// Package errors defines the sentinel errors shared across wiremap.
//
// Two families exist and they are handled differently:
//
// Configuration errors (registry misuse) signal a programming mistake in the
// caller's setup code. They should abort startup rather than be caught per
// call.
//
// Document errors are runtime conditions caused by the payload itself. They
// are returned alongside a nil result and are safe to inspect and report.
package errors

import (
	"errors"
)

var (
	// ErrTypeRegistered indicates an attempt to register a resource shape
	// for a wire type name that already has one. Duplicate registration is
	// a configuration bug, not a runtime condition to recover from.
	ErrTypeRegistered = errors.New("resource type already registered")

	// ErrTypeNotRegistered indicates that no resource shape exists for a
	// wire type name. Raised by lookups, by unregistering an absent type,
	// and by decoding a document that mentions an unknown type.
	ErrTypeNotRegistered = errors.New("resource type not registered")

	// ErrInvalidDescriptor indicates a resource shape descriptor that fails
	// validation (empty type name, duplicate field names, unknown kind).
	ErrInvalidDescriptor = errors.New("invalid resource descriptor")

	// ErrInvalidDocument indicates a payload that could not be parsed or
	// whose top-level shape is not a recognized wire document.
	ErrInvalidDocument = errors.New("invalid wire document")

	// ErrDuplicateResource indicates an attempt to add a resource to an
	// identity store that already holds an instance for that (type, id).
	ErrDuplicateResource = errors.New("resource already present in store")

	// ErrSchemaLoadFailed indicates that a schema file could not be read,
	// decoded, or validated.
	ErrSchemaLoadFailed = errors.New("schema load failed")
)
