package registry

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// SemverResolver converts a version constraint plus a list of available
// versions into the exact version to use.
type SemverResolver struct{}

// NewSemverResolver creates a new SemverResolver.
func NewSemverResolver() *SemverResolver {
	return &SemverResolver{}
}

// Resolve returns the highest available version that satisfies the constraint.
// An empty constraint or "latest" accepts any version.
func (r *SemverResolver) Resolve(constraint string, available []string) (string, error) {
	var c *semver.Constraints
	var err error

	if constraint == "" || constraint == "latest" {
		c, err = semver.NewConstraint(">= 0")
	} else {
		c, err = semver.NewConstraint(constraint)
	}
	if err != nil {
		return "", fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	var valid []*semver.Version
	for _, vStr := range available {
		v, err := semver.NewVersion(vStr)
		if err != nil {
			continue // Skip invalid versions in availability list
		}
		if c.Check(v) {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return "", fmt.Errorf("no version satisfies constraint %q from available options", constraint)
	}

	sort.Sort(semver.Collection(valid))

	// Collection sorts ascending, so the last element is the highest.
	highest := valid[len(valid)-1]

	// Return the original string form so map lookups keep working.
	for _, vStr := range available {
		v, err := semver.NewVersion(vStr)
		if err != nil {
			continue
		}
		if v.Equal(highest) {
			return vStr, nil
		}
	}
	return highest.String(), nil
}
