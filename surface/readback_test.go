// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func TestRGBAData(t *testing.T) {
	s, err := NewRaster(4, 3)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	s.Canvas().ClearWithColor(gg.RGBA{R: 1, A: 1})

	// Submission is caller-driven; readback sees only submitted work.
	if err := s.FlushAndSubmit(); err != nil {
		t.Fatalf("FlushAndSubmit: %v", err)
	}
	data, err := s.RGBAData()
	if err != nil {
		t.Fatalf("RGBAData: %v", err)
	}
	if want := 4 * 3 * 4; len(data) != want {
		t.Fatalf("len(data) = %d, want %d", len(data), want)
	}
	// Opaque red, premultiplied.
	if data[0] != 255 || data[1] != 0 || data[2] != 0 || data[3] != 255 {
		t.Errorf("first pixel = %v, want [255 0 0 255]", data[:4])
	}
}

func TestRGBADataPremultiplied(t *testing.T) {
	s, err := NewRaster(2, 2)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	// Half-transparent white: premultiplied rows carry the color
	// already scaled by alpha.
	s.Canvas().ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 0.5})

	if err := s.FlushAndSubmit(); err != nil {
		t.Fatalf("FlushAndSubmit: %v", err)
	}
	data, err := s.RGBAData()
	if err != nil {
		t.Fatalf("RGBAData: %v", err)
	}
	a := data[3]
	if a < 126 || a > 129 {
		t.Fatalf("alpha = %d, want ~127", a)
	}
	for i := 0; i < 3; i++ {
		if diff := int(data[i]) - int(a); diff < -2 || diff > 2 {
			t.Errorf("component %d = %d, want premultiplied ~%d", i, data[i], a)
		}
	}
}

func TestPNGData(t *testing.T) {
	s, err := NewRaster(16, 9)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	data, err := s.PNGData()
	if err != nil {
		t.Fatalf("PNGData: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNGData output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("decoded dimensions = %dx%d, want 16x9", b.Dx(), b.Dy())
	}
}

func TestSavePNG(t *testing.T) {
	s, err := NewRaster(8, 8)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Errorf("output is not valid PNG: %v", err)
	}
}

func TestSavePNGFileCreateError(t *testing.T) {
	s, err := NewRaster(8, 8)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	defer s.Close()

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	if err := s.SavePNG(path); !errors.Is(err, ErrFileCreate) {
		t.Errorf("SavePNG error = %v, want ErrFileCreate", err)
	}
}

func TestReadbackAfterClose(t *testing.T) {
	s, err := NewRaster(8, 8)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	s.Close()

	if _, err := s.RGBAData(); !errors.Is(err, ErrReadPixels) {
		t.Errorf("RGBAData after close error = %v, want ErrReadPixels", err)
	}
	if _, err := s.PNGData(); !errors.Is(err, ErrPNGEncode) {
		t.Errorf("PNGData after close error = %v, want ErrPNGEncode", err)
	}
}
