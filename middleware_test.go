package caplib_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	caplib "github.com/Coralee-Long/13-OOP-interfaces"
	"github.com/Coralee-Long/13-OOP-interfaces/animal"
	"github.com/Coralee-Long/13-OOP-interfaces/policy"
	"github.com/Coralee-Long/13-OOP-interfaces/values"
)

func Test_Chain_Order(t *testing.T) {
	var order []string
	tag := func(name string) caplib.Middleware {
		return func(next caplib.InvokeFunc) caplib.InvokeFunc {
			return func(ctx context.Context) error {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	fn := caplib.Chain(func(ctx context.Context) error {
		order = append(order, "fn")
		return nil
	}, tag("outer"), tag("inner"))

	require.NoError(t, fn(context.Background()))
	assert.Equal(t, []string{"outer", "inner", "fn"}, order)
}

func Test_LoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := caplib.WithCapability(context.Background(), values.MustNewCapabilityName("animal.flee"))
	fn := caplib.Chain(func(ctx context.Context) error {
		return nil
	}, caplib.LoggingMiddleware(logger))

	require.NoError(t, fn(ctx))
	assert.Contains(t, buf.String(), "invoking capability")
	assert.Contains(t, buf.String(), "capability=animal.flee")
	assert.Contains(t, buf.String(), "capability completed")
}

func Test_LoggingMiddleware_Failure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	boom := errors.New("boom")
	fn := caplib.Chain(func(ctx context.Context) error {
		return boom
	}, caplib.LoggingMiddleware(logger))

	assert.ErrorIs(t, fn(context.Background()), boom)
	assert.Contains(t, buf.String(), "capability failed")
	assert.Contains(t, buf.String(), "capability=unknown")
}

func Test_PanicRecoveryMiddleware(t *testing.T) {
	fn := caplib.Chain(func(ctx context.Context) error {
		panic("unexpected")
	}, caplib.PanicRecoveryMiddleware())

	err := fn(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capability panicked")
}

func Test_CapabilityMiddleware(t *testing.T) {
	checker := caplib.NewCapabilityChecker(map[string]*policy.GrantSet{
		"fish": {Patterns: []string{"animal.*"}},
	})

	invoked := false
	fn := caplib.Chain(func(ctx context.Context) error {
		invoked = true
		return nil
	}, caplib.CapabilityMiddleware(checker))

	t.Run("granted", func(t *testing.T) {
		invoked = false
		ctx := caplib.WithSubject(context.Background(), "fish")
		ctx = caplib.WithCapability(ctx, values.MustNewCapabilityName("animal.hunt"))

		require.NoError(t, fn(ctx))
		assert.True(t, invoked)
	})

	t.Run("denied", func(t *testing.T) {
		invoked = false
		ctx := caplib.WithSubject(context.Background(), "rabbit")
		ctx = caplib.WithCapability(ctx, values.MustNewCapabilityName("animal.hunt"))

		err := fn(ctx)
		assert.ErrorIs(t, err, caplib.ErrCapabilityDenied)
		assert.False(t, invoked)
	})

	t.Run("no metadata passes through", func(t *testing.T) {
		invoked = false
		require.NoError(t, fn(context.Background()))
		assert.True(t, invoked)
	})
}

// Guard gates a real capability invocation: the wolf may hunt, the rabbit may
// not, and the denied invocation never runs.
func Test_Guard(t *testing.T) {
	checker := caplib.NewCapabilityChecker(map[string]*policy.GrantSet{
		"wolf": {Patterns: []string{"animal.hunt"}},
	})

	var buf bytes.Buffer
	wolf := animal.NewWolf(animal.WithOutput(&buf))

	err := caplib.Guard(context.Background(), checker, "wolf",
		values.MustNewCapabilityName("animal.hunt"),
		func(ctx context.Context) error {
			animal.MakeHunt(wolf)
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, "*The Wolf is hunting*\n", buf.String())

	buf.Reset()
	err = caplib.Guard(context.Background(), checker, "rabbit",
		values.MustNewCapabilityName("animal.hunt"),
		func(ctx context.Context) error {
			t.Fatal("denied invocation must not run")
			return nil
		})
	assert.ErrorIs(t, err, caplib.ErrCapabilityDenied)
	assert.Empty(t, buf.String())
}

func Test_ContextHelpers(t *testing.T) {
	ctx := context.Background()

	_, ok := caplib.SubjectFromContext(ctx)
	assert.False(t, ok)
	_, ok = caplib.CapabilityFromContext(ctx)
	assert.False(t, ok)

	name := values.MustNewCapabilityName("media.play")
	ctx = caplib.WithSubject(ctx, "video")
	ctx = caplib.WithCapability(ctx, name)

	subject, ok := caplib.SubjectFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "video", subject)

	capability, ok := caplib.CapabilityFromContext(ctx)
	require.True(t, ok)
	assert.True(t, name.Equals(capability))
}
