package caplib_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	caplib "github.com/Coralee-Long/13-OOP-interfaces"
	"github.com/Coralee-Long/13-OOP-interfaces/policy"
	"github.com/Coralee-Long/13-OOP-interfaces/values"
)

type recordingDenialHandler struct {
	denied []policy.Request
}

func (h *recordingDenialHandler) OnDenial(req policy.Request, reason string) {
	h.denied = append(h.denied, req)
}

func Test_CapabilityChecker_Check(t *testing.T) {
	grants := map[string]*policy.GrantSet{
		"fish":   {Patterns: []string{"animal.*"}},
		"rabbit": {Patterns: []string{"animal.flee"}},
	}
	checker := caplib.NewCapabilityChecker(grants)
	ctx := context.Background()

	tests := []struct {
		name       string
		subject    string
		capability string
		wantErr    bool
	}{
		{"fish may flee", "fish", "animal.flee", false},
		{"fish may hunt", "fish", "animal.hunt", false},
		{"rabbit may flee", "rabbit", "animal.flee", false},
		{"rabbit may not hunt", "rabbit", "animal.hunt", true},
		{"unknown subject denied", "wolf", "animal.hunt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.Check(ctx, tt.subject, values.MustNewCapabilityName(tt.capability))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, caplib.ErrCapabilityDenied))

				var de *caplib.DenialError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, tt.subject, de.Subject)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_CapabilityChecker_DenialHandler(t *testing.T) {
	handler := &recordingDenialHandler{}
	checker := caplib.NewCapabilityChecker(
		map[string]*policy.GrantSet{},
		caplib.WithDenialHandler(handler),
	)

	err := checker.Check(context.Background(), "rabbit", values.MustNewCapabilityName("animal.hunt"))
	require.Error(t, err)

	require.Len(t, handler.denied, 1)
	assert.Equal(t, "rabbit", handler.denied[0].Subject)
	assert.Equal(t, "animal.hunt", handler.denied[0].Capability.String())
}

func Test_CapabilityChecker_Evaluate(t *testing.T) {
	handler := &recordingDenialHandler{}
	checker := caplib.NewCapabilityChecker(
		map[string]*policy.GrantSet{"fish": {Patterns: []string{"animal.*"}}},
		caplib.WithDenialHandler(handler),
	)

	assert.True(t, checker.Evaluate("fish", values.MustNewCapabilityName("animal.hunt")))
	assert.False(t, checker.Evaluate("fish", values.MustNewCapabilityName("media.play")))
	assert.False(t, checker.Evaluate("ghost", values.MustNewCapabilityName("animal.flee")))

	// Evaluate must be side-effect-free.
	assert.Empty(t, handler.denied)
}
