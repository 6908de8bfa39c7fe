package policy

import "github.com/Coralee-Long/13-OOP-interfaces/values"

// Request is a single capability invocation to be judged.
type Request struct {
	// Subject is the entity attempting the operation, e.g. "rabbit".
	Subject string

	// Capability is the operation being attempted, e.g. animal.flee.
	Capability values.CapabilityName
}

// GrantSet is the set of capability patterns a subject has been granted.
type GrantSet struct {
	// Patterns are doublestar globs matched against capability names,
	// e.g. "animal.*", "log.write", "**".
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// Policy enforces capability grants against runtime requests.
type Policy interface {
	// Check judges the request and reports denials through any configured
	// denial handler.
	Check(req Request, grants *GrantSet) bool

	// Evaluate returns the decision without side effects (like logging denials).
	Evaluate(req Request, grants *GrantSet) bool
}

// DenialHandler is called when a policy check denies a request.
type DenialHandler interface {
	// OnDenial is called when a capability request is denied.
	OnDenial(req Request, reason string)
}

// GrantStore persists and retrieves granted capability patterns.
type GrantStore interface {
	Load() (*GrantSet, error)
	Save(grants *GrantSet) error
	ConfigPath() string
}
