// Package observability provides hooks around the model build pipeline.
//
// The package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup and receive events about template loading, section
// composition, and artifact export.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for build events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnComposeStart(ctx, section)
//	// ... compose placements ...
//	observability.Build().OnComposeComplete(ctx, section, n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from the model build pipeline.
type BuildHooks interface {
	// Template events
	OnTemplateLoad(ctx context.Context, path string, parts int, duration time.Duration, err error)

	// Compose events, fired once per model section.
	OnComposeStart(ctx context.Context, section string)
	OnComposeComplete(ctx context.Context, section string, placements int, duration time.Duration, err error)

	// Export events
	OnExportStart(ctx context.Context, path string)
	OnExportComplete(ctx context.Context, path string, bytes int, duration time.Duration, err error)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnTemplateLoad(context.Context, string, int, time.Duration, error) {}
func (NoopBuildHooks) OnComposeStart(context.Context, string)                            {}
func (NoopBuildHooks) OnComposeComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopBuildHooks) OnExportStart(context.Context, string)                            {}
func (NoopBuildHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {
}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any build runs.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
}
