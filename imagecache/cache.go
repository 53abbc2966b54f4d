// Package imagecache loads and caches decoded images for drawing.
//
// Decoded images are cached by file path with no staleness check:
// UI assets do not change under a running process, and callers that
// need a fresh read bypass the cache explicitly.
package imagecache

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/gogpu/gg"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode indicates an in-memory byte slice could not be decoded as
// an image.
var ErrDecode = errors.New("imagecache: failed to decode image bytes")

// ImageReadError indicates the image file could not be read.
type ImageReadError struct {
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("imagecache: failed to read image %q: %v", e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error { return e.Err }

// ImageDecodeError indicates the image file was read but could not be
// decoded.
type ImageDecodeError struct {
	Path string
	Err  error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("imagecache: failed to decode image %q: %v", e.Path, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// Cache holds decoded images keyed by file path. It is safe for
// concurrent use; file I/O and decoding happen outside the lock, so
// concurrent misses for the same path may decode twice and the last
// writer wins.
type Cache struct {
	mu     sync.Mutex
	images map[string]*gg.ImageBuf
}

// Default is the shared cache used when no cache is injected.
var Default = NewCache()

// NewCache creates an empty image cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*gg.ImageBuf)}
}

// Load returns the decoded image at path. With useCache a hit returns
// the shared decoded handle and a miss inserts the fresh decode;
// without it the cache is bypassed entirely, both for lookup and
// insert.
func (c *Cache) Load(path string, useCache bool) (*gg.ImageBuf, error) {
	if useCache {
		c.mu.Lock()
		img, ok := c.images[path]
		c.mu.Unlock()
		if ok {
			gg.Logger().Debug("image cache hit", "path", path)
			return img, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImageReadError{Path: path, Err: err}
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageDecodeError{Path: path, Err: err}
	}
	img := gg.ImageBufFromImage(decoded)

	if useCache {
		c.mu.Lock()
		c.images[path] = img
		c.mu.Unlock()
	}
	return img, nil
}

// Measure returns the pixel dimensions of the image at path, loading
// and caching it the same way Load does.
func (c *Cache) Measure(path string, useCache bool) (width, height int, err error) {
	img, err := c.Load(path, useCache)
	if err != nil {
		return 0, 0, err
	}
	width, height = img.Bounds()
	return width, height, nil
}

// Decode decodes an image from an in-memory byte slice. The result is
// not cached.
func (c *Cache) Decode(data []byte) (*gg.ImageBuf, error) {
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return gg.ImageBufFromImage(decoded), nil
}

// Clear drops every cached image. Handles already returned by Load
// stay valid.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*gg.ImageBuf)
	c.mu.Unlock()
}
