// Package mapper exposes the facade tying the type registry and the codec
// engines together behind one surface.
package mapper

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jsonapi-tools/wiremap/internal/codec"
	"github.com/jsonapi-tools/wiremap/internal/codec/options"
	"github.com/jsonapi-tools/wiremap/internal/resource"
	"github.com/jsonapi-tools/wiremap/internal/schema"
	"github.com/jsonapi-tools/wiremap/internal/wire"
)

const mapperName = "mapper"

// Mapper owns a resource type registry and provides thin entry points to
// the decode, encode, and error-decode engines.
//
// Register all types before handing documents to a Mapper; the registry is
// read-only during engine calls.
type Mapper struct {
	logger   hclog.Logger
	registry *schema.Registry
}

// New creates a Mapper, optionally pre-registering the given descriptors.
func New(logger hclog.Logger, descriptors ...schema.Descriptor) (*Mapper, error) {
	registry, err := schema.NewRegistry(descriptors...)
	if err != nil {
		return nil, err
	}

	return &Mapper{
		logger:   logger.Named(mapperName),
		registry: registry,
	}, nil
}

// NewWithRegistry creates a Mapper over an existing registry, e.g. one
// populated from a schema file.
func NewWithRegistry(logger hclog.Logger, registry *schema.Registry) *Mapper {
	return &Mapper{
		logger:   logger.Named(mapperName),
		registry: registry,
	}
}

// RegisterType adds a resource shape. Registering an already-present wire
// type name is a configuration bug and fails.
func (m *Mapper) RegisterType(d schema.Descriptor) error {
	return m.registry.Register(d)
}

// UnregisterType removes the shape for a wire type name.
func (m *Mapper) UnregisterType(typeName string) error {
	return m.registry.Unregister(typeName)
}

// LookupType returns the shape for a wire type name.
func (m *Mapper) LookupType(typeName string) (schema.Descriptor, error) {
	return m.registry.Lookup(typeName)
}

// Registry exposes the underlying registry, e.g. for diagnostics.
func (m *Mapper) Registry() *schema.Registry {
	return m.registry
}

// Decode deserializes a raw document into a fresh identity store.
func (m *Mapper) Decode(raw []byte, opt ...options.DecodeOption) (*codec.Result, error) {
	m.logger.Debug("Decoding document", "bytes", len(raw))

	result, err := codec.Decode(raw, m.registry, opt...)
	if err != nil {
		m.logger.Debug("Decode failed", "error", err)
		return nil, err
	}

	m.logger.Debug("Decoded document",
		"shape", result.Shape,
		"primary", len(result.Primary),
		"stored", result.Store.Len(),
	)
	return result, nil
}

// DecodeInto deserializes a raw document into the supplied store, merging
// with already-loaded resources.
func (m *Mapper) DecodeInto(
	raw []byte,
	store *resource.Store,
	opt ...options.DecodeOption,
) (*codec.Result, error) {
	m.logger.Debug("Decoding document into store", "bytes", len(raw), "stored", store.Len())
	return codec.DecodeInto(raw, m.registry, store, opt...)
}

// Encode serializes resources into a wire document.
func (m *Mapper) Encode(
	resources []*resource.Resource,
	opt ...options.EncodeOption,
) (*wire.Document, error) {
	m.logger.Debug("Encoding resources", "count", len(resources))
	return codec.Encode(resources, m.registry, opt...)
}

// EncodeBytes serializes resources directly to a JSON request body.
func (m *Mapper) EncodeBytes(
	resources []*resource.Resource,
	opt ...options.EncodeOption,
) ([]byte, error) {
	return codec.EncodeBytes(resources, m.registry, opt...)
}

// DecodeError extracts a structured error from an error-shaped document,
// falling back to the transport-supplied status code. Never fails.
func (m *Mapper) DecodeError(raw []byte, fallbackStatus int) *codec.Error {
	return codec.DecodeError(raw, fallbackStatus)
}
