package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coralee-Long/13-OOP-interfaces/parser"
	"github.com/Coralee-Long/13-OOP-interfaces/validation"
)

type mockRegistry struct {
	schemas map[string]string
}

func (m *mockRegistry) GetSchema(kind string) (string, bool) {
	s, ok := m.schemas[kind]
	return s, ok
}

func newValidator() *validation.SchemaValidator {
	return validation.NewSchemaValidator(&mockRegistry{
		schemas: map[string]string{
			"log": `{
				"type": "object",
				"properties": {
					"path": {"type": "string"},
					"buffer_size": {"type": "integer", "minimum": 1}
				},
				"additionalProperties": false
			}`,
		},
	})
}

func Test_SchemaValidator_Validate(t *testing.T) {
	validator := newValidator()

	t.Run("valid manifest", func(t *testing.T) {
		manifest := &parser.Manifest{
			Name:    "test-pipeline",
			Version: "1.0.0",
			Loggers: []parser.LoggerEntry{
				{Kind: "log", Name: "console"},
				{Kind: "log", Name: "file", Version: ">= 1.0.0", Config: map[string]interface{}{"path": "/tmp/a.log"}},
			},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("config violates schema", func(t *testing.T) {
		manifest := &parser.Manifest{
			Loggers: []parser.LoggerEntry{
				{Kind: "log", Name: "file", Config: map[string]interface{}{"path": 42}},
			},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "does not match schema")
	})

	t.Run("integer config values pass integer schema", func(t *testing.T) {
		manifest := &parser.Manifest{
			Loggers: []parser.LoggerEntry{
				{Kind: "log", Name: "file", Config: map[string]interface{}{"buffer_size": 8}},
			},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("unknown kind", func(t *testing.T) {
		manifest := &parser.Manifest{
			Loggers: []parser.LoggerEntry{{Kind: "telepathy", Name: "mind"}},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], `unknown capability kind "telepathy"`)
	})

	t.Run("missing kind or name", func(t *testing.T) {
		manifest := &parser.Manifest{
			Loggers: []parser.LoggerEntry{{Kind: "", Name: ""}},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("invalid version constraint", func(t *testing.T) {
		manifest := &parser.Manifest{
			Loggers: []parser.LoggerEntry{
				{Kind: "log", Name: "console", Version: "!!!"},
			},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors[0], "invalid version constraint")
	})

	t.Run("multiple errors collected", func(t *testing.T) {
		manifest := &parser.Manifest{
			Loggers: []parser.LoggerEntry{
				{Kind: "telepathy", Name: "mind"},
				{Kind: "log", Name: "file", Config: map[string]interface{}{"extra": true}},
			},
		}

		res, err := validator.Validate(manifest)
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 2)
	})
}

func Test_SchemaValidator_NilManifest(t *testing.T) {
	_, err := newValidator().Validate(nil)
	assert.Error(t, err)
}

func Test_SchemaValidator_BrokenSchema(t *testing.T) {
	validator := validation.NewSchemaValidator(&mockRegistry{
		schemas: map[string]string{"log": `{"type": 17`},
	})

	manifest := &parser.Manifest{
		Loggers: []parser.LoggerEntry{{Kind: "log", Name: "console"}},
	}

	_, err := validator.Validate(manifest)
	assert.Error(t, err)
}
