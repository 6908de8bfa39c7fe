// Package values holds validated value objects shared across the library.
package values

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CapabilityName identifies a single capability operation in "kind.operation"
// form, e.g. "animal.flee" or "log.write".
// Enforces non-empty, trimmed, lowercase names.
type CapabilityName struct {
	value string
}

// NewCapabilityName creates a CapabilityName with strict validation.
// A valid capability name must:
// - Have exactly two non-empty segments separated by a single dot
// - Contain only lowercase alphanumeric characters, underscores, and hyphens
// - Be at most 64 characters long
func NewCapabilityName(name string) (CapabilityName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CapabilityName{}, fmt.Errorf("capability name cannot be empty")
	}

	if len(name) > 64 {
		return CapabilityName{}, fmt.Errorf("capability name too long (max 64 chars)")
	}

	kind, op, found := strings.Cut(name, ".")
	if !found || kind == "" || op == "" {
		return CapabilityName{}, fmt.Errorf("capability name %q must have the form kind.operation", name)
	}
	if strings.Contains(op, ".") {
		return CapabilityName{}, fmt.Errorf("capability name %q must contain exactly one dot", name)
	}

	for _, segment := range []string{kind, op} {
		for _, ch := range segment {
			if !isValidCapabilityChar(ch) {
				return CapabilityName{}, fmt.Errorf("invalid capability name %q: segments must contain only lowercase alphanumeric characters, underscores, and hyphens", name)
			}
		}
	}

	return CapabilityName{value: name}, nil
}

func isValidCapabilityChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r == '_' ||
		r == '-'
}

// MustNewCapabilityName creates a CapabilityName or panics.
// Use only in tests or for hard-coded names known to be valid.
func MustNewCapabilityName(name string) CapabilityName {
	cn, err := NewCapabilityName(name)
	if err != nil {
		panic(err)
	}
	return cn
}

// Kind returns the capability kind, the part before the dot.
func (c CapabilityName) Kind() string {
	kind, _, _ := strings.Cut(c.value, ".")
	return kind
}

// Operation returns the operation, the part after the dot.
func (c CapabilityName) Operation() string {
	_, op, _ := strings.Cut(c.value, ".")
	return op
}

// String returns the full "kind.operation" name.
func (c CapabilityName) String() string {
	return c.value
}

// IsEmpty reports whether this is the zero value.
func (c CapabilityName) IsEmpty() bool {
	return c.value == ""
}

// Equals compares two capability names by value.
func (c CapabilityName) Equals(other CapabilityName) bool {
	return c.value == other.value
}

// MarshalJSON encodes the capability name as a plain JSON string.
func (c CapabilityName) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON decodes and validates a capability name from a JSON string.
func (c *CapabilityName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cn, err := NewCapabilityName(s)
	if err != nil {
		return err
	}
	*c = cn
	return nil
}
