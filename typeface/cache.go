package typeface

import (
	"sync"

	"github.com/gogpu/gg"
)

// defaultKey is the cache key for the unnamed default typeface.
const defaultKey = "__default__"

// Cache resolves font families to typefaces and memoizes the results
// for the process lifetime. It is safe for concurrent use; font file
// I/O and parsing happen outside the lock, so concurrent misses for the
// same family may resolve twice and the last writer wins.
//
// There is no eviction: installed fonts do not change under a running
// process, and the handful of families a UI uses is small.
type Cache struct {
	mu        sync.Mutex
	typefaces map[string]*Typeface

	emojiOnce sync.Once
	emoji     *Typeface
}

// Default is the shared cache used when no cache is injected.
var Default = NewCache()

// NewCache creates an empty typeface cache.
func NewCache() *Cache {
	return &Cache{typefaces: make(map[string]*Typeface)}
}

// Resolve returns the typeface for a font family. The empty string
// requests the default typeface. Resolve never fails: an unknown
// family falls through the fallback list and ultimately the embedded
// font.
func (c *Cache) Resolve(family string) *Typeface {
	key := family
	if key == "" {
		key = defaultKey
	}

	c.mu.Lock()
	if tf, ok := c.typefaces[key]; ok {
		c.mu.Unlock()
		return tf
	}
	c.mu.Unlock()

	tf := resolveFamily(family)
	gg.Logger().Debug("typeface resolved", "requested", family, "family", tf.Family)

	c.mu.Lock()
	c.typefaces[key] = tf
	c.mu.Unlock()
	return tf
}
