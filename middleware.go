package caplib

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Coralee-Long/13-OOP-interfaces/values"
)

// InvokeFunc is a single capability invocation.
type InvokeFunc func(ctx context.Context) error

// Middleware is a function that wraps an InvokeFunc to add cross-cutting
// behavior. Middleware executes in FIFO order (first registered wraps first,
// onion model).
type Middleware func(next InvokeFunc) InvokeFunc

// Chain wraps fn with the given middleware, first middleware outermost.
func Chain(fn InvokeFunc, middleware ...Middleware) InvokeFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		fn = middleware[i](fn)
	}
	return fn
}

// Context helpers for invocation metadata propagation.
type invocationContextKey struct {
	name string
}

var (
	subjectContextKey    = &invocationContextKey{name: "subject"}
	capabilityContextKey = &invocationContextKey{name: "capability"}
)

// WithSubject adds the invoking subject to the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// SubjectFromContext retrieves the invoking subject from the context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey).(string)
	return subject, ok
}

// WithCapability adds the invoked capability name to the context.
func WithCapability(ctx context.Context, capability values.CapabilityName) context.Context {
	return context.WithValue(ctx, capabilityContextKey, capability)
}

// CapabilityFromContext retrieves the invoked capability from the context.
func CapabilityFromContext(ctx context.Context) (values.CapabilityName, bool) {
	capability, ok := ctx.Value(capabilityContextKey).(values.CapabilityName)
	return capability, ok
}

// LoggingMiddleware returns a middleware that logs capability invocations
// through a structured logger.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context) error {
			name := "unknown"
			if capability, ok := CapabilityFromContext(ctx); ok {
				name = capability.String()
			}
			logger.Info("invoking capability", "capability", name)
			err := next(ctx)
			if err != nil {
				logger.Error("capability failed", "capability", name, "error", err)
			} else {
				logger.Info("capability completed", "capability", name)
			}
			return err
		}
	}
}

// PanicRecoveryMiddleware returns a middleware that catches panics and
// converts them to errors instead of crashing the caller.
func PanicRecoveryMiddleware() Middleware {
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("capability panicked: %v", r)
				}
			}()
			return next(ctx)
		}
	}
}

// CapabilityMiddleware returns a middleware that enforces capability grants.
// Invocations without subject and capability in the context pass through
// unchecked.
func CapabilityMiddleware(checker *CapabilityChecker) Middleware {
	return func(next InvokeFunc) InvokeFunc {
		return func(ctx context.Context) error {
			subject, ok := SubjectFromContext(ctx)
			if !ok {
				return next(ctx)
			}
			capability, ok := CapabilityFromContext(ctx)
			if !ok {
				return next(ctx)
			}

			if err := checker.Check(ctx, subject, capability); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}

// Guard checks the capability and, if granted, invokes fn with the invocation
// metadata on the context.
func Guard(ctx context.Context, checker *CapabilityChecker, subject string, capability values.CapabilityName, fn InvokeFunc) error {
	ctx = WithSubject(ctx, subject)
	ctx = WithCapability(ctx, capability)
	return Chain(fn, CapabilityMiddleware(checker))(ctx)
}
