// Package policy matches capability requests against granted patterns.
package policy

import (
	"github.com/bmatcuk/doublestar/v4"
)

var _ Policy = (*GlobPolicy)(nil)

// GlobPolicy grants a request when any grant pattern matches the requested
// capability name. Patterns use doublestar glob syntax, so "animal.*" grants
// every animal operation and "**" grants everything.
type GlobPolicy struct {
	denialHandler DenialHandler
}

// GlobPolicyOption configures a GlobPolicy.
type GlobPolicyOption func(*GlobPolicy)

// WithDenialHandler sets the handler invoked when Check denies a request.
func WithDenialHandler(handler DenialHandler) GlobPolicyOption {
	return func(p *GlobPolicy) {
		p.denialHandler = handler
	}
}

// NewGlobPolicy creates a glob-matching policy.
func NewGlobPolicy(opts ...GlobPolicyOption) *GlobPolicy {
	p := &GlobPolicy{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Check judges the request and reports a denial to the denial handler.
func (p *GlobPolicy) Check(req Request, grants *GrantSet) bool {
	if p.Evaluate(req, grants) {
		return true
	}
	if p.denialHandler != nil {
		p.denialHandler.OnDenial(req, "no grant pattern matches "+req.Capability.String())
	}
	return false
}

// Evaluate returns the decision without side effects.
// A nil or empty grant set denies everything. A pattern that fails to parse
// denies rather than panics; remaining patterns are still tried.
func (p *GlobPolicy) Evaluate(req Request, grants *GrantSet) bool {
	if grants == nil {
		return false
	}
	name := req.Capability.String()
	for _, pattern := range grants.Patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
