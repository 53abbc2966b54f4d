package typeface

import "github.com/gogpu/gg/text"

// Typeface is a loaded font keyed by the family it resolved from.
// The Source holds the parsed font; sized faces are derived on demand.
type Typeface struct {
	// Family is the family name the typeface resolved to, which may
	// differ from the requested family after fallback.
	Family string

	// Source is the parsed font backing this typeface.
	Source *text.FontSource
}

// Face derives a sized text face from the typeface.
func (t *Typeface) Face(size float64) text.Face {
	return t.Source.Face(size)
}
