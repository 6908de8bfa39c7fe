package registry

// Factory constructs an implementer instance from a manifest config block.
type Factory func(config map[string]interface{}) (interface{}, error)

// Implementer describes one registered implementation of a capability kind.
type Implementer struct {
	// Kind is the capability kind this implementer satisfies, e.g. "log".
	Kind string

	// Name identifies the implementation within its kind, e.g. "console".
	Name string

	// Version is the implementation's semantic version.
	Version string

	// New constructs an instance from a config block.
	New Factory
}

// CapabilityRegistry manages capability kinds: the JSON schema each kind's
// config must satisfy, and the implementers registered for it.
type CapabilityRegistry interface {
	// Register adds a schema for a capability kind (e.g. "log", "animal").
	// model can be a struct (to generate schema) or a JSON schema string/map.
	Register(kind string, model interface{}) error

	// RegisterImplementer adds a versioned implementer factory for a kind.
	RegisterImplementer(kind, name, version string, factory Factory) error

	// GetSchema returns the JSON schema for a capability kind.
	GetSchema(kind string) (string, bool)

	// List returns all registered capability kinds.
	List() []string

	// Implementers returns the implementers registered for a kind.
	Implementers(kind string) []Implementer

	// Resolve picks the highest-versioned implementer of kind/name that
	// satisfies the semver constraint. Constraint "" or "latest" means any.
	Resolve(kind, name, constraint string) (Implementer, error)
}
