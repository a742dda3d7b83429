// Package shell describes the host window the application drives.
package shell

import (
	"errors"
	"sync"
)

// ErrClosed is returned when loading a page into a closed shell.
var ErrClosed = errors.New("shell is closed")

// Shell is the main application window.
type Shell interface {
	// Load navigates the shell to url.
	Load(url string) error
	// OpenDevTools opens the developer tools panel.
	OpenDevTools()
	// OnClosed registers a callback fired once when the shell closes.
	OnClosed(fn func())
	// Close closes the shell.
	Close()
}

// Factory creates a new shell.
type Factory func() (Shell, error)

// Headless is a Shell without a window. It records what was requested of it.
type Headless struct {
	mu       sync.Mutex
	url      string
	devTools bool
	closed   bool
	onClosed []func()
}

// NewHeadless creates an open headless shell.
func NewHeadless() *Headless {
	return &Headless{}
}

// HeadlessFactory is a Factory producing headless shells.
func HeadlessFactory() (Shell, error) {
	return NewHeadless(), nil
}

func (h *Headless) Load(url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	h.url = url
	return nil
}

func (h *Headless) OpenDevTools() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.devTools = true
}

func (h *Headless) OnClosed(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onClosed = append(h.onClosed, fn)
}

// Close fires the closed callbacks outside the lock. Closing twice is a no-op.
func (h *Headless) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	callbacks := h.onClosed
	h.onClosed = nil
	h.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// URL returns the last loaded page.
func (h *Headless) URL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.url
}

// DevToolsOpen reports whether OpenDevTools was called.
func (h *Headless) DevToolsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.devTools
}

// Closed reports whether the shell was closed.
func (h *Headless) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
