// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface manages rendering targets and GPU context lifecycle.
//
// A Surface binds a drawing canvas to a platform rendering target:
// an in-memory raster buffer, an OpenGL framebuffer, or a Metal
// device/queue pair. GPU-backed surfaces additionally hold a Context,
// the expensive accelerator binding that outlives any single surface.
//
// # Context reuse
//
// GPU context creation is the slow path. Contexts are therefore pooled
// per backend kind: closing a surface returns its context to the pool,
// and the next surface of the same kind picks it up instead of creating
// a new one. Resizing a surface never touches the context at all; only
// the render target is rebuilt.
//
// Contexts are strictly thread-bound. A Surface and its Context must
// stay on the OS thread that created them; the pool exists to carry a
// context between consecutive surfaces on that thread, not to share it
// across threads. Callers on GPU backends should pin the render thread
// with runtime.LockOSThread.
package surface
