// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about drag sessions and layout operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The layout engine is synchronous and context-free, so hook methods take
// plain values rather than a context.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The layout engine calls hooks to emit events:
//
//	observability.Session().OnSessionStart(unitID, "move")
//	// ... pointer moves ...
//	observability.Session().OnSessionEnd(unitID, "move", elapsed, false)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events about move and resize sessions.
type SessionHooks interface {
	// OnSessionStart records the start of a session. mode is "move" or "resize".
	OnSessionStart(unitID, mode string)

	// OnSessionEnd records the end of a session. abandoned is true when the
	// unit was destroyed before the pointer was released.
	OnSessionEnd(unitID, mode string, duration time.Duration, abandoned bool)
}

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events about whole-layout operations.
type LayoutHooks interface {
	// OnLoad records a loadLayout call and how many units it produced.
	OnLoad(units int, duration time.Duration, err error)

	// OnClear records a clearLayout call and how many units it destroyed.
	OnClear(units int)

	// OnSnapshot records a getLayout call.
	OnSnapshot(units int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStart(string, string)                    {}
func (NoopSessionHooks) OnSessionEnd(string, string, time.Duration, bool) {}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLoad(int, time.Duration, error) {}
func (NoopLayoutHooks) OnClear(int)                      {}
func (NoopLayoutHooks) OnSnapshot(int)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks SessionHooks = NoopSessionHooks{}
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	hooksMu      sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any sessions run.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	layoutHooks = NoopLayoutHooks{}
}
