// Package registry implements a capability registry: schemas and versioned
// implementer factories per capability kind.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
)

// ErrImplementerNotFound is returned when no registered implementer matches a
// kind/name/constraint triple.
var ErrImplementerNotFound = errors.New("implementer not found")

var _ CapabilityRegistry = (*Registry)(nil)

// Registry implements CapabilityRegistry using in-memory storage.
type Registry struct {
	schemas      map[string]string
	implementers map[string][]Implementer
	mu           sync.RWMutex
	strictMode   bool
	reflector    *jsonschema.Reflector
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithStrictMode controls whether Register rejects models it cannot turn into
// a schema. Enabled by default.
func WithStrictMode(strict bool) RegistryOption {
	return func(r *Registry) {
		r.strictMode = strict
	}
}

// NewRegistry creates a new capability registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas:      make(map[string]string),
		implementers: make(map[string][]Implementer),
		reflector:    new(jsonschema.Reflector),
		strictMode:   true,
	}

	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a schema for a capability kind.
// model can be a Go struct (to generate schema) or a raw JSON schema
// string, []byte or map.
func (r *Registry) Register(kind string, model interface{}) error {
	if kind == "" {
		return fmt.Errorf("capability kind cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("capability kind already registered: %s", kind)
	}

	schemaStr, err := r.schemaFor(model)
	if err != nil {
		return fmt.Errorf("capability kind %s: %w", kind, err)
	}

	r.schemas[kind] = schemaStr
	return nil
}

func (r *Registry) schemaFor(model interface{}) (string, error) {
	switch v := model.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case map[string]interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal schema map: %w", err)
		}
		return string(b), nil
	default:
		// Assume a Go struct (or pointer to one) and generate the schema.
		s := r.reflector.Reflect(model)
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal generated schema: %w", err)
		}
		return string(b), nil
	}
}

// RegisterImplementer adds a versioned implementer factory for a kind.
// The kind's schema must be registered first when strict mode is on.
func (r *Registry) RegisterImplementer(kind, name, version string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("implementer %s/%s: factory cannot be nil", kind, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.strictMode {
		if _, ok := r.schemas[kind]; !ok {
			return fmt.Errorf("implementer %s/%s: capability kind not registered", kind, name)
		}
	}

	for _, impl := range r.implementers[kind] {
		if impl.Name == name && impl.Version == version {
			return fmt.Errorf("implementer already registered: %s/%s@%s", kind, name, version)
		}
	}

	r.implementers[kind] = append(r.implementers[kind], Implementer{
		Kind:    kind,
		Name:    name,
		Version: version,
		New:     factory,
	})
	return nil
}

// GetSchema retrieves the JSON Schema for a capability kind.
func (r *Registry) GetSchema(kind string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// List returns all registered capability kinds.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		keys = append(keys, k)
	}
	return keys
}

// Implementers returns a copy of the implementers registered for a kind.
func (r *Registry) Implementers(kind string) []Implementer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Implementer(nil), r.implementers[kind]...)
}

// Resolve picks the highest-versioned implementer of kind/name satisfying the
// constraint.
func (r *Registry) Resolve(kind, name, constraint string) (Implementer, error) {
	r.mu.RLock()
	candidates := make([]Implementer, 0)
	for _, impl := range r.implementers[kind] {
		if impl.Name == name {
			candidates = append(candidates, impl)
		}
	}
	r.mu.RUnlock()

	if len(candidates) == 0 {
		return Implementer{}, fmt.Errorf("%w: %s/%s", ErrImplementerNotFound, kind, name)
	}

	available := make([]string, len(candidates))
	for i, impl := range candidates {
		available[i] = impl.Version
	}

	resolver := NewSemverResolver()
	version, err := resolver.Resolve(constraint, available)
	if err != nil {
		return Implementer{}, fmt.Errorf("%s/%s: %w", kind, name, err)
	}

	for _, impl := range candidates {
		if impl.Version == version {
			return impl, nil
		}
	}
	return Implementer{}, fmt.Errorf("%w: %s/%s@%s", ErrImplementerNotFound, kind, name, version)
}
