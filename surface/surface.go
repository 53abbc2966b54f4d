// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	// Register the wgpu accelerator so GPU-backed surfaces can bind it.
	_ "github.com/gogpu/gg/gpu"
)

// Surface binds a drawing canvas to a platform rendering target.
//
// GPU-backed surfaces hold a pooled Context alongside the canvas;
// raster surfaces have no context. A Surface is single-threaded and,
// for GPU backends, pinned to the OS thread that created it.
type Surface struct {
	kind   BackendKind
	width  int
	height int

	canvas *gg.Context
	ctx    *Context // nil for raster surfaces
	pool   *ContextPool

	gl    glTarget
	metal metalTarget

	closed bool
}

// Option configures surface creation.
type Option func(*config)

type config struct {
	pool     *ContextPool
	provider gpucontext.DeviceProvider
}

// WithPool makes the surface acquire and release its GPU context
// through the given pool instead of the package default. Used by tests
// and embedders that manage context lifetime per render thread.
func WithPool(p *ContextPool) Option {
	return func(c *config) { c.pool = p }
}

// WithDeviceProvider shares the host application's GPU device with the
// engine accelerator, so the surface renders on the same device the
// window swapchain uses.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(c *config) { c.provider = p }
}

func applyOptions(opts []Option) config {
	cfg := config{pool: defaultPool}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewRaster creates a CPU-backed surface. Raster surfaces have no GPU
// context; Resize reports ErrNoContext and readback is always direct.
func NewRaster(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrRasterSurface, width, height)
	}
	return &Surface{
		kind:   BackendRaster,
		width:  width,
		height: height,
		canvas: gg.NewContext(width, height),
	}, nil
}

// NewGL creates a surface rendering into an existing OpenGL framebuffer.
// The GPU context is taken from the pool when a warm one exists for the
// GL backend, otherwise created.
func NewGL(width, height, sampleCount, stencilBits int, framebufferID uint32, opts ...Option) (*Surface, error) {
	cfg := applyOptions(opts)
	ctx, err := obtainContext(cfg, BackendGL)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		kind:   BackendGL,
		width:  width,
		height: height,
		ctx:    ctx,
		pool:   cfg.pool,
		gl: glTarget{
			sampleCount:   sampleCount,
			stencilBits:   stencilBits,
			framebufferID: framebufferID,
		},
	}
	if err := s.buildTarget(width, height); err != nil {
		cfg.pool.release(ctx)
		return nil, err
	}
	return s, nil
}

// NewMetal creates a surface rendering via a Metal device and command
// queue supplied by the host windowing layer as opaque pointers.
func NewMetal(devicePtr, queuePtr uintptr, width, height int, opts ...Option) (*Surface, error) {
	cfg := applyOptions(opts)
	ctx, err := obtainContext(cfg, BackendMetal)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		kind:   BackendMetal,
		width:  width,
		height: height,
		ctx:    ctx,
		pool:   cfg.pool,
		metal: metalTarget{
			devicePtr: devicePtr,
			queuePtr:  queuePtr,
		},
	}
	if err := s.buildTarget(width, height); err != nil {
		cfg.pool.release(ctx)
		return nil, err
	}
	return s, nil
}

// NewVulkan would create a Vulkan-backed surface. The Vulkan backend is
// not yet implemented; this always returns ErrVulkanNotImplemented.
func NewVulkan(surfacePtr uintptr, width, height int) (*Surface, error) {
	return nil, ErrVulkanNotImplemented
}

// obtainContext reuses a pooled context for the backend kind or creates
// a fresh one.
func obtainContext(cfg config, kind BackendKind) (*Context, error) {
	if ctx := cfg.pool.acquire(kind); ctx != nil {
		return ctx, nil
	}
	return newContext(kind, cfg.provider)
}

// buildTarget (re)builds the render target for the current dimensions,
// leaving the GPU context untouched.
func (s *Surface) buildTarget(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrRenderTarget, width, height)
	}
	if s.canvas == nil {
		s.canvas = gg.NewContext(width, height)
		return nil
	}
	if err := s.canvas.Resize(width, height); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderTarget, err)
	}
	return nil
}

// Resize rebuilds the render target for the new dimensions while
// keeping the GPU context. It fails with ErrNoContext on surfaces that
// have no GPU context to reuse (raster surfaces).
func (s *Surface) Resize(width, height int) error {
	if s.ctx == nil {
		return fmt.Errorf("%w: cannot resize %s surface", ErrNoContext, s.kind)
	}
	if err := s.buildTarget(width, height); err != nil {
		return err
	}
	s.width = width
	s.height = height
	gg.Logger().Debug("surface resized, context reused",
		"backend", s.kind.String(), "width", width, "height", height)
	return nil
}

// ResizeGL resizes a GL-backed surface, updating the framebuffer
// parameters along with the dimensions. The surface must have been
// created with NewGL.
func (s *Surface) ResizeGL(width, height, sampleCount, stencilBits int, framebufferID uint32) error {
	if s.kind != BackendGL {
		return fmt.Errorf("%w: gl resize on %s surface", ErrNoContext, s.kind)
	}
	if err := s.Resize(width, height); err != nil {
		return err
	}
	s.gl = glTarget{
		sampleCount:   sampleCount,
		stencilBits:   stencilBits,
		framebufferID: framebufferID,
	}
	return nil
}

// ResizeMetal resizes a Metal-backed surface, updating the device and
// queue handles along with the dimensions. The surface must have been
// created with NewMetal.
func (s *Surface) ResizeMetal(devicePtr, queuePtr uintptr, width, height int) error {
	if s.kind != BackendMetal {
		return fmt.Errorf("%w: metal resize on %s surface", ErrNoContext, s.kind)
	}
	if err := s.Resize(width, height); err != nil {
		return err
	}
	s.metal = metalTarget{devicePtr: devicePtr, queuePtr: queuePtr}
	return nil
}

// Canvas returns the drawing canvas bound to this surface.
func (s *Surface) Canvas() *gg.Context { return s.canvas }

// Kind returns the surface's backend kind.
func (s *Surface) Kind() BackendKind { return s.kind }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// FlushAndSubmit submits all pending drawing work to the GPU. On raster
// surfaces this is a no-op.
func (s *Surface) FlushAndSubmit() error {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.FlushGPU()
}

// Close releases the surface. A live GPU context is returned to the
// pool for the next surface of the same backend instead of being
// destroyed. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.ctx != nil {
		s.pool.release(s.ctx)
		s.ctx = nil
	}
	if s.canvas != nil {
		return s.canvas.Close()
	}
	return nil
}
