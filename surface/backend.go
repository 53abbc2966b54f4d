// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// BackendKind identifies the platform rendering target a surface is
// bound to. All backends share the same surface state machine; only
// target construction differs.
type BackendKind uint8

const (
	// BackendRaster is a CPU-only in-memory target.
	BackendRaster BackendKind = iota

	// BackendGL renders into an existing OpenGL framebuffer.
	BackendGL

	// BackendMetal renders via a Metal device and command queue.
	BackendMetal

	// BackendVulkan is reserved; Vulkan surfaces are not yet implemented.
	BackendVulkan
)

// String returns the backend name for logs and error messages.
func (k BackendKind) String() string {
	switch k {
	case BackendRaster:
		return "raster"
	case BackendGL:
		return "gl"
	case BackendMetal:
		return "metal"
	case BackendVulkan:
		return "vulkan"
	default:
		return "unknown"
	}
}

// glTarget carries the OpenGL framebuffer parameters a GL surface was
// created with. Resize keeps these and rebuilds only the pixel target.
type glTarget struct {
	sampleCount   int
	stencilBits   int
	framebufferID uint32
}

// metalTarget carries the Metal device and command queue handles as
// opaque pointers supplied by the host windowing layer.
type metalTarget struct {
	devicePtr uintptr
	queuePtr  uintptr
}
