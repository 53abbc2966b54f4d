package typeface

import "strings"

// Segment is a run of text drawn with a single typeface.
type Segment struct {
	Text     string
	Typeface *Typeface
}

// isLikelyEmoji reports whether a code point lives in the emoji blocks
// that need an emoji font. Deliberately coarse: it classifies by block
// rather than by Unicode emoji properties, which is cheap and matches
// what color emoji fonts actually cover.
func isLikelyEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // Misc Symbols and Pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map
		return true
	case r >= 0x1F700 && r <= 0x1F77F: // Alchemical Symbols
		return true
	case r >= 0x1F780 && r <= 0x1F7FF: // Geometric Shapes Extended
		return true
	case r >= 0x1F800 && r <= 0x1F8FF: // Supplemental Arrows-C
		return true
	case r >= 0x1F900 && r <= 0x1F9FF: // Supplemental Symbols and Pictographs
		return true
	case r >= 0x1FA00 && r <= 0x1FA6F: // Chess Symbols
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF: // Symbols and Pictographs Extended-A
		return true
	case r >= 0x1F1E0 && r <= 0x1F1FF: // Regional indicators (flags)
		return true
	default:
		return false
	}
}

// containsEmoji reports whether the string has any code point in the
// emoji blocks.
func containsEmoji(s string) bool {
	for _, r := range s {
		if isLikelyEmoji(r) {
			return true
		}
	}
	return false
}

// Segment splits text into runs of uniform typeface: emoji code points
// get the system emoji typeface, everything else the primary typeface.
// A nil primary means the default typeface. Empty input yields no
// segments.
//
// Text without emoji takes a single-scan fast path and comes back as
// one segment, so the per-code-point work only happens for strings
// that actually mix scripts.
func (c *Cache) Segment(s string, primary *Typeface) []Segment {
	if s == "" {
		return nil
	}
	if primary == nil {
		primary = c.Resolve("")
	}

	if !containsEmoji(s) {
		return []Segment{{Text: s, Typeface: primary}}
	}

	emoji := c.EmojiTypeface()
	if emoji == nil {
		// No emoji font installed; runs still split, and emoji runs
		// render with the primary typeface (likely as tofu).
		emoji = primary
	}

	var (
		segments []Segment
		pending  strings.Builder
		inEmoji  bool
	)
	flush := func() {
		if pending.Len() == 0 {
			return
		}
		tf := primary
		if inEmoji {
			tf = emoji
		}
		segments = append(segments, Segment{Text: pending.String(), Typeface: tf})
		pending.Reset()
	}
	for _, r := range s {
		e := isLikelyEmoji(r)
		if e != inEmoji {
			flush()
			inEmoji = e
		}
		pending.WriteRune(r)
	}
	flush()
	return segments
}

// DescribeSegments returns (text, family) pairs for the segmentation of
// s, for diagnostics and tests.
func (c *Cache) DescribeSegments(s string, primary *Typeface) [][2]string {
	segs := c.Segment(s, primary)
	out := make([][2]string, len(segs))
	for i, seg := range segs {
		out[i] = [2]string{seg.Text, seg.Typeface.Family}
	}
	return out
}
