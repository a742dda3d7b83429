package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitInRegistrationOrder(t *testing.T) {
	b := NewBus()
	var calls []string

	require.NoError(t, b.On(EventReady, func(ctx context.Context, e Event) error {
		calls = append(calls, "first:"+string(e))
		return nil
	}))
	require.NoError(t, b.On(EventReady, func(ctx context.Context, e Event) error {
		calls = append(calls, "second:"+string(e))
		return nil
	}))

	require.NoError(t, b.Emit(context.Background(), EventReady))
	assert.Equal(t, []string{"first:ready", "second:ready"}, calls)
}

func TestBus_EmitWithoutHandlers(t *testing.T) {
	b := NewBus()

	assert.NoError(t, b.Emit(context.Background(), EventActivate))
	assert.False(t, b.Has(EventActivate))
}

func TestBus_StopsOnFirstError(t *testing.T) {
	b := NewBus()
	boom := errors.New("boom")
	secondCalled := false

	require.NoError(t, b.On(EventShellClosed, func(context.Context, Event) error { return boom }))
	require.NoError(t, b.On(EventShellClosed, func(context.Context, Event) error {
		secondCalled = true
		return nil
	}))

	assert.ErrorIs(t, b.Emit(context.Background(), EventShellClosed), boom)
	assert.False(t, secondCalled)
}

func TestBus_ContextCancelled(t *testing.T) {
	b := NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	called := 0

	require.NoError(t, b.On(EventReady, func(context.Context, Event) error {
		called++
		cancel()
		return nil
	}))
	require.NoError(t, b.On(EventReady, func(context.Context, Event) error {
		called++
		return nil
	}))

	assert.ErrorIs(t, b.Emit(ctx, EventReady), context.Canceled)
	assert.Equal(t, 1, called)
}

func TestBus_Validation(t *testing.T) {
	b := NewBus()
	noop := func(context.Context, Event) error { return nil }

	assert.ErrorIs(t, b.On("", noop), ErrEventEmpty)
	assert.ErrorIs(t, b.On(EventReady, nil), ErrHandlerNil)
	assert.ErrorIs(t, b.Emit(context.Background(), ""), ErrEventEmpty)
}

func TestBus_HandlerMayRegisterDuringEmit(t *testing.T) {
	b := NewBus()

	require.NoError(t, b.On(EventReady, func(ctx context.Context, e Event) error {
		return b.On(EventActivate, func(context.Context, Event) error { return nil })
	}))

	require.NoError(t, b.Emit(context.Background(), EventReady))
	assert.True(t, b.Has(EventActivate))
}

func TestBus_Clear(t *testing.T) {
	b := NewBus()
	require.NoError(t, b.On(EventReady, func(context.Context, Event) error { return nil }))

	b.Clear()

	assert.False(t, b.Has(EventReady))
}

func TestBus_ConcurrentOnAndEmit(t *testing.T) {
	b := NewBus()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = b.On(EventActivate, func(context.Context, Event) error { return nil })
		}()
		go func() {
			defer wg.Done()
			_ = b.Emit(context.Background(), EventActivate)
		}()
	}
	wg.Wait()

	assert.True(t, b.Has(EventActivate))
}
