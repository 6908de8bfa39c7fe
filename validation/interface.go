package validation

import "github.com/Coralee-Long/13-OOP-interfaces/parser"

// SchemaSource provides the JSON schema registered for a capability kind.
// *registry.Registry satisfies this.
type SchemaSource interface {
	GetSchema(kind string) (string, bool)
}

// Result holds the outcome of validating a manifest.
type Result struct {
	Valid  bool
	Errors []string
}

// ManifestValidator validates a manifest's logger entries against the
// registered capability schemas.
type ManifestValidator interface {
	// Validate checks that every logger entry's config matches its kind's
	// schema and that its version constraint parses. Violations land in
	// Result.Errors; a non-nil error means a schema itself was unusable.
	Validate(manifest *parser.Manifest) (*Result, error)
}
