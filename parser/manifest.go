package parser

// LoggerEntry declares one member of the manifest's logger pipeline.
type LoggerEntry struct {
	// Kind is the capability kind, e.g. "log".
	Kind string `yaml:"kind" json:"kind"`

	// Name selects the implementer within the kind, e.g. "console" or "file".
	Name string `yaml:"name" json:"name"`

	// Version is an optional semver constraint on the implementer version.
	// Empty or "latest" accepts any registered version.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Config is the implementer-specific configuration block, validated
	// against the kind's registered schema.
	Config map[string]interface{} `yaml:"config,omitempty" json:"config,omitempty"`
}

// Manifest declares a named logger pipeline and the capability grants that
// come with it.
type Manifest struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`

	// Loggers are composed, in order, into a composite logger.
	Loggers []LoggerEntry `yaml:"loggers" json:"loggers"`

	// Grants are capability glob patterns, e.g. "animal.*".
	Grants []string `yaml:"grants,omitempty" json:"grants,omitempty"`
}
