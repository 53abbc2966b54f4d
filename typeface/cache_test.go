package typeface

import "testing"

func TestResolveNeverFails(t *testing.T) {
	c := NewCache()
	tests := []struct {
		name   string
		family string
	}{
		{"default family", ""},
		{"installed or fallback family", "Noto Sans"},
		{"unknown family", "No Such Family 9c1f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := c.Resolve(tt.family)
			if tf == nil {
				t.Fatal("Resolve returned nil")
			}
			if tf.Source == nil {
				t.Fatal("Resolve returned typeface without source")
			}
			if tf.Family == "" {
				t.Error("resolved typeface has empty family")
			}
		})
	}
}

func TestResolveCachesByRequestedFamily(t *testing.T) {
	c := NewCache()
	first := c.Resolve("No Such Family 9c1f")
	second := c.Resolve("No Such Family 9c1f")
	if first != second {
		t.Error("second Resolve returned a different typeface")
	}

	// The default family uses its own cache slot.
	def := c.Resolve("")
	if def == nil || def.Source == nil {
		t.Fatal("default typeface missing")
	}
	if again := c.Resolve(""); again != def {
		t.Error("default typeface not cached")
	}
}

func TestResolvedFaceIsUsable(t *testing.T) {
	tf := NewCache().Resolve("")
	face := tf.Face(14)
	if face == nil {
		t.Fatal("Face(14) = nil")
	}
	m := face.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if !face.HasGlyph('A') {
		t.Error("resolved face lacks basic Latin coverage")
	}
}

func TestEmojiTypefaceIsSticky(t *testing.T) {
	c := NewCache()
	first := c.EmojiTypeface()
	second := c.EmojiTypeface()
	if first != second {
		t.Error("EmojiTypeface changed between calls")
	}
	if first != nil && !first.Face(16).HasGlyph(emojiSeed) {
		t.Error("emoji typeface does not cover the seed emoji")
	}
}
