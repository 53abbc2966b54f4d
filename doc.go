// Package paint provides a style-driven immediate-mode painting backend
// for UI frameworks, layered over the gogpu 2D engine.
//
// # Overview
//
// paint turns a platform rendering target (raster buffer, OpenGL
// framebuffer, Metal device/queue) into a stable drawing surface and
// exposes a small painting API on top of it: rectangles, circles, text,
// and images, all driven by a single Style value.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/paint"
//	    "github.com/gogpu/paint/surface"
//	)
//
//	s, err := surface.NewRaster(512, 512)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	p := paint.New(s)
//	p.SetStyle(paint.DefaultStyle().WithFillColor("#336699"))
//	p.FillRect(32, 32, 448, 448)
//	p.FillText("hello", 64, 256)
//
//	s.FlushAndSubmit()
//	err = s.SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - paint: Style, Shadow, FontMetrics, color parsing, and the Painter
//   - surface: rendering targets, GPU context lifecycle, pixel readback
//   - typeface: font family resolution and emoji fallback segmentation
//   - imagecache: decoded image loading and caching
//
// Rasterization, antialiasing, and glyph shaping are provided by
// github.com/gogpu/gg and are not reimplemented here.
//
// # Concurrency
//
// Surfaces and Painters are single-threaded. The typeface and image
// caches are safe for concurrent use. GPU contexts are thread-bound and
// must never cross OS threads; see the surface package for the context
// reuse contract.
package paint

// Version is the current version of the paint library.
const Version = "0.1.0"
