// Package caplib ties the capability contracts together: a policy-gated
// checker, invocation middleware, and assembly of logger pipelines from
// manifests.
package caplib

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Coralee-Long/13-OOP-interfaces/policy"
	"github.com/Coralee-Long/13-OOP-interfaces/values"
)

// ErrCapabilityDenied is returned when a capability check refuses a request.
var ErrCapabilityDenied = errors.New("capability denied")

// DenialError reports which subject was denied which capability.
type DenialError struct {
	Subject    string
	Capability values.CapabilityName
	Reason     string
}

func (e *DenialError) Error() string {
	return fmt.Sprintf("capability denied: %s may not %s: %s", e.Subject, e.Capability.String(), e.Reason)
}

// Is implements error matching for errors.Is() checks.
func (e *DenialError) Is(target error) bool {
	return target == ErrCapabilityDenied
}

// CapabilityChecker checks if operations are allowed based on granted
// capabilities. It consults a policy per subject.
type CapabilityChecker struct {
	policy        policy.Policy
	grants        map[string]*policy.GrantSet
	denialHandler policy.DenialHandler
	logger        *slog.Logger
}

// CheckerOption configures a CapabilityChecker.
type CheckerOption func(*CapabilityChecker)

// WithPolicy replaces the default glob policy.
func WithPolicy(p policy.Policy) CheckerOption {
	return func(c *CapabilityChecker) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithDenialHandler sets the handler invoked on denied capabilities.
func WithDenialHandler(handler policy.DenialHandler) CheckerOption {
	return func(c *CapabilityChecker) {
		c.denialHandler = handler
	}
}

// WithLogger sets the structured logger used for checker diagnostics.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *CapabilityChecker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCapabilityChecker creates a checker over per-subject grant sets.
// Subjects absent from the map are denied everything.
func NewCapabilityChecker(grants map[string]*policy.GrantSet, opts ...CheckerOption) *CapabilityChecker {
	c := &CapabilityChecker{
		policy: policy.NewGlobPolicy(),
		grants: grants,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check reports whether subject may invoke capability.
// On refusal the denial handler fires and a DenialError is returned.
func (c *CapabilityChecker) Check(ctx context.Context, subject string, capability values.CapabilityName) error {
	req := policy.Request{Subject: subject, Capability: capability}

	grants, ok := c.grants[subject]
	if !ok || grants == nil {
		return c.handleDeny(req, "no capabilities granted")
	}

	if c.policy.Evaluate(req, grants) {
		return nil
	}

	return c.handleDeny(req, "capability not granted")
}

// Evaluate is the side-effect-free form of Check.
func (c *CapabilityChecker) Evaluate(subject string, capability values.CapabilityName) bool {
	grants, ok := c.grants[subject]
	if !ok || grants == nil {
		return false
	}
	return c.policy.Evaluate(policy.Request{Subject: subject, Capability: capability}, grants)
}

func (c *CapabilityChecker) handleDeny(req policy.Request, reason string) error {
	if c.denialHandler != nil {
		c.denialHandler.OnDenial(req, reason)
	}
	c.logger.Debug("capability denied",
		"subject", req.Subject,
		"capability", req.Capability.String(),
		"reason", reason,
	)
	return &DenialError{Subject: req.Subject, Capability: req.Capability, Reason: reason}
}
