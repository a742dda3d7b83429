// Package lifecycle carries the host application's lifecycle callbacks
// (ready, activate, window-all-closed, shell-closed) to registered handlers.
package lifecycle

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrHandlerNil is returned when a nil handler is passed to On.
	ErrHandlerNil = errors.New("handler cannot be nil")

	// ErrEventEmpty is returned when an empty event is passed to On or Emit.
	ErrEventEmpty = errors.New("event cannot be empty")
)

// Event names a lifecycle callback raised by the host.
type Event string

const (
	// EventReady fires once the host finished initializing.
	EventReady Event = "ready"
	// EventActivate fires when the host is re-activated (dock click on macOS).
	EventActivate Event = "activate"
	// EventWindowAllClosed fires after the last window closed.
	EventWindowAllClosed Event = "window-all-closed"
	// EventShellClosed fires when the main shell window closed.
	EventShellClosed Event = "shell-closed"
)

// Handler reacts to a lifecycle event.
type Handler func(ctx context.Context, event Event) error

// Bus dispatches lifecycle events to handlers.
// Handlers run synchronously in registration order; the first error stops dispatch.
type Bus interface {
	On(event Event, handler Handler) error
	Emit(ctx context.Context, event Event) error
	Has(event Event) bool
	Clear()
}

type bus struct {
	mu       sync.RWMutex
	handlers map[Event][]Handler
}

// NewBus creates an empty lifecycle bus.
func NewBus() Bus {
	return &bus{
		handlers: make(map[Event][]Handler),
	}
}

func (b *bus) On(event Event, handler Handler) error {
	if event == "" {
		return ErrEventEmpty
	}
	if handler == nil {
		return ErrHandlerNil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
	return nil
}

func (b *bus) Emit(ctx context.Context, event Event) error {
	if event == "" {
		return ErrEventEmpty
	}

	// Handlers may register or emit further events.
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event]))
	copy(handlers, b.handlers[event])
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (b *bus) Has(event Event) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event]) > 0
}

func (b *bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[Event][]Handler)
}
