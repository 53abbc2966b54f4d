package paint

// FontMetrics describes the vertical geometry of a sized text face.
// Ascent is the distance from the baseline to the typographic top and
// Descent the distance from the baseline to the typographic bottom,
// both reported as positive values. Height is Ascent + Descent.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	Leading float64
	Height  float64
}

// Metrics builds a FontMetrics from raw face metrics. Engine faces may
// report ascent or descent with either sign convention; magnitudes are
// taken so Height is stable regardless.
func Metrics(ascent, descent, leading float64) FontMetrics {
	if ascent < 0 {
		ascent = -ascent
	}
	if descent < 0 {
		descent = -descent
	}
	return FontMetrics{
		Ascent:  ascent,
		Descent: descent,
		Leading: leading,
		Height:  ascent + descent,
	}
}

// Shadow describes a drop shadow behind a filled or stroked shape.
// The shadow is drawn offset by (OffsetX, OffsetY) before the shape
// itself, with a Gaussian-style blur when BlurRadius is positive.
type Shadow struct {
	Color      string
	OffsetX    float64
	OffsetY    float64
	BlurRadius float64
}

// blurSigma returns the Gaussian sigma for the shadow blur, or 0 when
// the shadow is hard-edged.
func (s *Shadow) blurSigma() float64 {
	if s.BlurRadius > 0 {
		return s.BlurRadius / 2
	}
	return 0
}

// Style carries every drawing parameter the Painter consumes: colors,
// stroke width, font selection, corner rounding, and an optional shadow.
// Color fields hold hex strings as accepted by ParseColor; an empty
// string means unset.
//
// Style is a value type. The With* builders return a modified copy, so
// styles can be derived without aliasing:
//
//	s := paint.DefaultStyle().
//	    WithFillColor("#3498db").
//	    WithFontSize(18)
type Style struct {
	FillColor    string
	StrokeColor  string
	StrokeWidth  float64
	FontFamily   string
	FontSize     float64
	BorderRadius float64
	Shadow       *Shadow
}

// DefaultStyle returns the style the Painter starts with: opaque black
// fill, hairline stroke, 14px text in the default typeface.
func DefaultStyle() Style {
	return Style{
		FillColor:   "#000000",
		StrokeWidth: 1,
		FontSize:    14,
	}
}

// WithFillColor returns a copy of the style with the fill color replaced.
func (s Style) WithFillColor(c string) Style {
	s.FillColor = c
	return s
}

// WithStrokeColor returns a copy of the style with the stroke color replaced.
func (s Style) WithStrokeColor(c string) Style {
	s.StrokeColor = c
	return s
}

// WithStrokeWidth returns a copy of the style with the stroke width replaced.
func (s Style) WithStrokeWidth(w float64) Style {
	s.StrokeWidth = w
	return s
}

// WithFontFamily returns a copy of the style with the font family replaced.
func (s Style) WithFontFamily(family string) Style {
	s.FontFamily = family
	return s
}

// WithFontSize returns a copy of the style with the font size replaced.
func (s Style) WithFontSize(size float64) Style {
	s.FontSize = size
	return s
}

// WithBorderRadius returns a copy of the style with the corner radius replaced.
func (s Style) WithBorderRadius(r float64) Style {
	s.BorderRadius = r
	return s
}

// WithShadow returns a copy of the style with the shadow replaced.
// Pass nil to remove the shadow.
func (s Style) WithShadow(sh *Shadow) Style {
	s.Shadow = sh
	return s
}

// effectiveStrokeColor is the color stroked outlines are drawn with.
// An unset stroke color falls back to the fill color so a style with
// only a fill still produces visible strokes.
func (s Style) effectiveStrokeColor() string {
	if s.StrokeColor != "" {
		return s.StrokeColor
	}
	return s.FillColor
}
