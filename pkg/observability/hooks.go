// Package observability provides hooks for instrumenting renders.
//
// Consumers register hooks at startup to receive events about each render
// without the core packages depending on a particular backend. The default
// hooks do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, "mandelbrot", 90, 29)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, "mandelbrot", 2610, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	// OnSize records the terminal size that was detected.
	OnSize(ctx context.Context, width, height int, err error)

	// OnRenderStart records the start of a render on a width × height raster.
	OnRenderStart(ctx context.Context, kind string, width, height int)

	// OnRenderComplete records a finished render.
	OnRenderComplete(ctx context.Context, kind string, pixels int, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnSize(context.Context, int, int, error)                             {}
func (NoopRenderHooks) OnRenderStart(context.Context, string, int, int)                     {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any render.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
