package typeface

import (
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// emojiSeed is the code point used to verify a candidate font actually
// covers emoji glyphs.
const emojiSeed = '\U0001F389' // party popper

// EmojiTypeface returns the system emoji typeface, or nil when the
// system has none. The lookup runs at most once per process; the
// result, including a miss, is cached.
func (c *Cache) EmojiTypeface() *Typeface {
	c.emojiOnce.Do(func() {
		c.emoji = findEmojiTypeface()
		if c.emoji == nil {
			gg.Logger().Warn("no emoji font found, emoji will use the default typeface")
		} else {
			gg.Logger().Debug("emoji typeface resolved", "family", c.emoji.Family)
		}
	})
	return c.emoji
}

// findEmojiTypeface scans installed fonts for an emoji family and
// verifies coverage with a representative emoji glyph.
func findEmojiTypeface() *Typeface {
	for _, fp := range scanSystemFonts() {
		if !strings.Contains(normalizeFamily(fp.Family), "emoji") {
			continue
		}
		src, err := text.NewFontSourceFromFile(fp.Location.File)
		if err != nil {
			gg.Logger().Warn("failed to load emoji font candidate",
				"family", fp.Family, "path", fp.Location.File, "error", err)
			continue
		}
		if !src.Face(16).HasGlyph(emojiSeed) {
			src.Close()
			continue
		}
		return &Typeface{Family: fp.Family, Source: src}
	}
	return nil
}
