// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
)

// Snapshot returns a copy of the current surface contents as a
// premultiplied-alpha RGBA image. GPU submission is caller-driven:
// call FlushAndSubmit before reading back a GPU surface, or pending
// work will not be visible in the snapshot.
func (s *Surface) Snapshot() (*image.RGBA, error) {
	if s.closed || s.canvas == nil {
		return nil, fmt.Errorf("%w: surface is closed", ErrReadPixels)
	}
	src := s.canvas.Image()
	// image.RGBA stores premultiplied alpha, so converting through
	// draw.Draw yields the premultiplied rows readback promises.
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst, nil
}

// RGBAData reads back the surface pixels as premultiplied RGBA8 rows,
// top to bottom, with a row stride of Width*4 bytes.
func (s *Surface) RGBAData() ([]byte, error) {
	img, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	rowLen := s.width * 4
	if img.Stride == rowLen {
		return img.Pix[:s.height*rowLen], nil
	}
	// Repack when the snapshot carries row padding.
	data := make([]byte, s.height*rowLen)
	for y := 0; y < s.height; y++ {
		copy(data[y*rowLen:(y+1)*rowLen], img.Pix[y*img.Stride:y*img.Stride+rowLen])
	}
	return data, nil
}

// PNGData encodes the surface contents as PNG and returns the bytes.
// Like Snapshot, it does not flush: submit pending GPU work with
// FlushAndSubmit first.
func (s *Surface) PNGData() ([]byte, error) {
	if s.closed || s.canvas == nil {
		return nil, fmt.Errorf("%w: surface is closed", ErrPNGEncode)
	}
	var buf bytes.Buffer
	if err := s.canvas.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPNGEncode, err)
	}
	return buf.Bytes(), nil
}

// SavePNG encodes the surface contents as PNG and writes them to the
// given file path, creating or truncating the file.
func (s *Surface) SavePNG(path string) error {
	data, err := s.PNGData()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileCreate, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	return nil
}
