// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"
)

func TestNewRaster(t *testing.T) {
	s, err := NewRaster(64, 32)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	if s.Kind() != BackendRaster {
		t.Errorf("Kind() = %v, want BackendRaster", s.Kind())
	}
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("dimensions = %dx%d, want 64x32", s.Width(), s.Height())
	}
	if s.Canvas() == nil {
		t.Error("Canvas() = nil, want live canvas")
	}
}

func TestNewRasterInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRaster(tt.w, tt.h); !errors.Is(err, ErrRasterSurface) {
				t.Errorf("NewRaster(%d, %d) error = %v, want ErrRasterSurface", tt.w, tt.h, err)
			}
		})
	}
}

func TestNewVulkan(t *testing.T) {
	if _, err := NewVulkan(0xdead, 100, 100); !errors.Is(err, ErrVulkanNotImplemented) {
		t.Errorf("NewVulkan error = %v, want ErrVulkanNotImplemented", err)
	}
}

func TestRasterResizeHasNoContext(t *testing.T) {
	s, err := NewRaster(10, 10)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	if err := s.Resize(20, 20); !errors.Is(err, ErrNoContext) {
		t.Errorf("Resize error = %v, want ErrNoContext", err)
	}
	if s.Width() != 10 || s.Height() != 10 {
		t.Errorf("dimensions changed on failed resize: %dx%d", s.Width(), s.Height())
	}
}

func TestBackendResizeMismatch(t *testing.T) {
	s, err := NewRaster(10, 10)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	if err := s.ResizeGL(20, 20, 0, 8, 0); !errors.Is(err, ErrNoContext) {
		t.Errorf("ResizeGL on raster error = %v, want ErrNoContext", err)
	}
	if err := s.ResizeMetal(0, 0, 20, 20); !errors.Is(err, ErrNoContext) {
		t.Errorf("ResizeMetal on raster error = %v, want ErrNoContext", err)
	}
}

func TestSurfaceCloseIdempotent(t *testing.T) {
	s, err := NewRaster(8, 8)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestFlushAndSubmitRaster(t *testing.T) {
	s, err := NewRaster(8, 8)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	// No GPU work pending on a raster surface; flush must be harmless.
	if err := s.FlushAndSubmit(); err != nil {
		t.Errorf("FlushAndSubmit: %v", err)
	}
}

func TestBackendKindString(t *testing.T) {
	tests := []struct {
		kind BackendKind
		want string
	}{
		{BackendRaster, "raster"},
		{BackendGL, "gl"},
		{BackendMetal, "metal"},
		{BackendVulkan, "vulkan"},
		{BackendKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BackendKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
