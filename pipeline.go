package caplib

import (
	"fmt"
	"log/slog"

	"github.com/Coralee-Long/13-OOP-interfaces/logging"
	"github.com/Coralee-Long/13-OOP-interfaces/parser"
	"github.com/Coralee-Long/13-OOP-interfaces/policy"
	"github.com/Coralee-Long/13-OOP-interfaces/registry"
)

// LogKind is the capability kind of the built-in loggers.
const LogKind = "log"

// LogConfig is the config block accepted by the built-in logger implementers.
type LogConfig struct {
	// Path is the destination file, required by the file logger.
	Path string `json:"path,omitempty"`

	// Level is the slog level name used by the slog logger.
	Level string `json:"level,omitempty"`
}

// NotALoggerError indicates a manifest entry resolved to an implementer that
// does not satisfy the Logger contract.
type NotALoggerError struct {
	Kind string
	Name string
}

func (e *NotALoggerError) Error() string {
	return fmt.Sprintf("implementer %s/%s does not satisfy the Logger contract", e.Kind, e.Name)
}

// RegisterBuiltinLoggers registers the "log" capability kind and its console,
// file and slog implementers, so manifests resolve out of the box.
func RegisterBuiltinLoggers(reg registry.CapabilityRegistry) error {
	if err := reg.Register(LogKind, LogConfig{}); err != nil {
		return err
	}

	implementers := []struct {
		name    string
		factory registry.Factory
	}{
		{"console", newConsoleLogger},
		{"file", newFileLogger},
		{"slog", newSlogLogger},
	}
	for _, impl := range implementers {
		if err := reg.RegisterImplementer(LogKind, impl.name, "1.0.0", impl.factory); err != nil {
			return err
		}
	}
	return nil
}

func newConsoleLogger(config map[string]interface{}) (interface{}, error) {
	return logging.NewConsoleLogger(), nil
}

func newFileLogger(config map[string]interface{}) (interface{}, error) {
	path, ok := config["path"].(string)
	if !ok || path == "" {
		return nil, fmt.Errorf("file logger requires a non-empty \"path\" config value")
	}
	return logging.NewFileLogger(path), nil
}

func newSlogLogger(config map[string]interface{}) (interface{}, error) {
	level := slog.LevelInfo
	if levelStr, ok := config["level"].(string); ok && levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			return nil, fmt.Errorf("unknown log level %q", levelStr)
		}
	}
	return logging.NewSlogLogger(nil, logging.WithSlogLevel(level)), nil
}

// BuildPipeline resolves every logger entry of the manifest through the
// registry and composes the results, in manifest order, into a composite
// logger. Validation is the caller's job; see the validation package.
func BuildPipeline(reg registry.CapabilityRegistry, manifest *parser.Manifest, opts ...logging.CompositeOption) (*logging.CompositeLogger, error) {
	if manifest == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	members := make([]logging.Logger, 0, len(manifest.Loggers))
	for i, entry := range manifest.Loggers {
		impl, err := reg.Resolve(entry.Kind, entry.Name, entry.Version)
		if err != nil {
			return nil, fmt.Errorf("logger %d: %w", i, err)
		}

		instance, err := impl.New(entry.Config)
		if err != nil {
			return nil, fmt.Errorf("logger %d (%s/%s): %w", i, entry.Kind, entry.Name, err)
		}

		logger, ok := instance.(logging.Logger)
		if !ok {
			return nil, &NotALoggerError{Kind: entry.Kind, Name: entry.Name}
		}
		members = append(members, logger)
	}

	return logging.NewCompositeLogger(members, opts...)
}

// GrantsFromManifest converts the manifest's grant patterns into a GrantSet.
func GrantsFromManifest(manifest *parser.Manifest) *policy.GrantSet {
	if manifest == nil {
		return &policy.GrantSet{}
	}
	return &policy.GrantSet{Patterns: append([]string(nil), manifest.Grants...)}
}
