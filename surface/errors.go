// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// Surface errors are categorical and non-retryable: they indicate a
// missing platform capability or an environment failure, never a
// transient condition. All are matched with errors.Is.
var (
	// ErrGraphicsInterface indicates the platform graphics interface
	// could not be obtained (no GPU accelerator is registered).
	ErrGraphicsInterface = errors.New("surface: failed to create graphics interface")

	// ErrContextCreation indicates the GPU context could not be created
	// or bound to the host device.
	ErrContextCreation = errors.New("surface: failed to create GPU context")

	// ErrRenderTarget indicates the render target could not be built
	// for the requested dimensions.
	ErrRenderTarget = errors.New("surface: failed to create render target")

	// ErrNoContext indicates an operation that needs a live GPU context
	// was invoked on a surface without one.
	ErrNoContext = errors.New("surface: no GPU context available")

	// ErrRasterSurface indicates a CPU raster surface could not be created.
	ErrRasterSurface = errors.New("surface: failed to create raster surface")

	// ErrPNGEncode indicates PNG encoding of the surface contents failed.
	ErrPNGEncode = errors.New("surface: failed to encode PNG")

	// ErrFileCreate indicates the output file could not be created.
	ErrFileCreate = errors.New("surface: failed to create file")

	// ErrFileWrite indicates writing to the output file failed.
	ErrFileWrite = errors.New("surface: failed to write file")

	// ErrReadPixels indicates the surface pixels could not be read back.
	ErrReadPixels = errors.New("surface: failed to read pixels")

	// ErrVulkanNotImplemented is returned by NewVulkan: the Vulkan
	// backend is not yet supported.
	ErrVulkanNotImplemented = errors.New("surface: vulkan support not yet implemented")
)
