// Package validation checks logger pipeline manifests against the capability
// schemas a registry holds.
package validation

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Coralee-Long/13-OOP-interfaces/parser"
)

var _ ManifestValidator = (*SchemaValidator)(nil)

// SchemaValidator implements ManifestValidator using JSON Schema compilation.
type SchemaValidator struct {
	schemas SchemaSource
}

// NewSchemaValidator creates a validator over the given schema source.
func NewSchemaValidator(schemas SchemaSource) *SchemaValidator {
	return &SchemaValidator{schemas: schemas}
}

// Validate checks each logger entry of the manifest.
func (v *SchemaValidator) Validate(manifest *parser.Manifest) (*Result, error) {
	if manifest == nil {
		return nil, fmt.Errorf("manifest cannot be nil")
	}

	result := &Result{Valid: true}

	for i, entry := range manifest.Loggers {
		if entry.Kind == "" || entry.Name == "" {
			result.addError("logger %d: kind and name are required", i)
			continue
		}

		if entry.Version != "" && entry.Version != "latest" {
			if _, err := semver.NewConstraint(entry.Version); err != nil {
				result.addError("logger %d (%s/%s): invalid version constraint %q", i, entry.Kind, entry.Name, entry.Version)
			}
		}

		schemaStr, ok := v.schemas.GetSchema(entry.Kind)
		if !ok {
			result.addError("logger %d: unknown capability kind %q", i, entry.Kind)
			continue
		}

		schema, err := jsonschema.CompileString(entry.Kind+".json", schemaStr)
		if err != nil {
			return nil, fmt.Errorf("schema for kind %q is invalid: %w", entry.Kind, err)
		}

		config := entry.Config
		if config == nil {
			config = map[string]interface{}{}
		}
		if err := schema.Validate(normalize(config)); err != nil {
			result.addError("logger %d (%s/%s): config does not match schema: %v", i, entry.Kind, entry.Name, err)
		}
	}

	return result, nil
}

func (r *Result) addError(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// normalize rewrites YAML-decoded values into the shapes the JSON Schema
// validator expects (string-keyed maps, []interface{} slices).
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		// JSON numbers decode as float64; YAML gives native ints.
		return float64(val)
	default:
		return val
	}
}
