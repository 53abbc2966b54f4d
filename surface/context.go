// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
)

// Context is the GPU accelerator binding behind a GPU-backed surface.
// Creating one is expensive, so contexts are pooled and reused across
// consecutive surfaces of the same backend kind.
//
// A Context is strictly thread-bound: it must only be used from the OS
// thread it was created on. It carries no locking of its own.
type Context struct {
	kind     BackendKind
	provider gpucontext.DeviceProvider
}

// newContext creates a GPU context for the given backend kind. It fails
// with ErrGraphicsInterface when no engine accelerator is registered,
// and with ErrContextCreation when binding the host device provider to
// the accelerator fails.
func newContext(kind BackendKind, provider gpucontext.DeviceProvider) (*Context, error) {
	if gg.Accelerator() == nil {
		return nil, fmt.Errorf("%w: no accelerator registered for %s backend", ErrGraphicsInterface, kind)
	}
	if provider != nil {
		if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
			return nil, fmt.Errorf("%w: binding device provider for %s backend: %v", ErrContextCreation, kind, err)
		}
	}
	gg.Logger().Info("GPU context created", "backend", kind.String())
	return &Context{kind: kind, provider: provider}, nil
}

// Kind returns the backend kind this context was created for.
func (c *Context) Kind() BackendKind { return c.kind }

// ContextPool holds at most one idle GPU context per backend kind.
// It is the explicit stand-in for a per-thread idle slot: a surface
// takes the slot on creation and puts its context back on Close, so
// the context survives surface churn (notably window resizes that
// recreate the surface).
//
// The zero value is not usable; call NewContextPool. The package keeps
// a default pool; tests and embedders may inject their own via
// WithPool.
type ContextPool struct {
	mu   sync.Mutex
	idle map[BackendKind]*Context
}

// NewContextPool creates an empty context pool.
func NewContextPool() *ContextPool {
	return &ContextPool{idle: make(map[BackendKind]*Context)}
}

// acquire removes and returns the idle context for the given backend
// kind, or nil when the slot is empty.
func (p *ContextPool) acquire(kind BackendKind) *Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctx := p.idle[kind]
	if ctx != nil {
		delete(p.idle, kind)
		gg.Logger().Debug("GPU context reused from pool", "backend", kind.String())
	}
	return ctx
}

// release stores a context in its backend's idle slot. When the slot is
// already occupied the incoming context is dropped; one warm context
// per backend is enough.
func (p *ContextPool) release(ctx *Context) {
	if ctx == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, occupied := p.idle[ctx.kind]; occupied {
		gg.Logger().Debug("GPU context dropped, pool slot occupied", "backend", ctx.kind.String())
		return
	}
	p.idle[ctx.kind] = ctx
}

// defaultPool is shared by all surfaces that do not inject their own.
var defaultPool = NewContextPool()

// DefaultPool returns the package-level context pool.
func DefaultPool() *ContextPool { return defaultPool }
