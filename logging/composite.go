package logging

import (
	"errors"
	"fmt"
)

var _ Logger = (*CompositeLogger)(nil)

// CompositeLogger satisfies the Logger contract by delegating to an ordered,
// fixed set of member loggers. Delegation order equals construction order.
//
// By default the composite is fail-fast: the first member error aborts
// delegation and is returned. WithFailSoft switches to invoking every member
// and returning the joined errors instead.
type CompositeLogger struct {
	members  []Logger
	failSoft bool
}

// CompositeOption configures a CompositeLogger.
type CompositeOption func(*CompositeLogger)

// WithFailSoft makes Log invoke every member even after a failure,
// returning all member errors joined together.
func WithFailSoft() CompositeOption {
	return func(l *CompositeLogger) {
		l.failSoft = true
	}
}

// NewCompositeLogger creates a composite over members.
// A nil member list, or a nil logger inside it, is a configuration error and
// is rejected here rather than deferred to the first Log call. An empty list
// is valid: the resulting composite logs to nowhere and never fails.
func NewCompositeLogger(members []Logger, opts ...CompositeOption) (*CompositeLogger, error) {
	if members == nil {
		return nil, fmt.Errorf("composite logger: member list: %w", ErrNilLogger)
	}
	for i, m := range members {
		if m == nil {
			return nil, fmt.Errorf("composite logger: member %d: %w", i, ErrNilLogger)
		}
	}

	l := &CompositeLogger{members: append([]Logger(nil), members...)}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Len returns the number of member loggers.
func (l *CompositeLogger) Len() int {
	return len(l.members)
}

// Log delegates message to each member in order.
func (l *CompositeLogger) Log(message string) error {
	if l.failSoft {
		var errs []error
		for i, m := range l.members {
			if err := m.Log(message); err != nil {
				errs = append(errs, fmt.Errorf("member %d: %w", i, err))
			}
		}
		return errors.Join(errs...)
	}

	for i, m := range l.members {
		if err := m.Log(message); err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
	}
	return nil
}
