package paint

import (
	"math"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/paint/imagecache"
	"github.com/gogpu/paint/surface"
	"github.com/gogpu/paint/typeface"
)

// fontSizeEpsilon is the threshold below which two font sizes are the
// same face. Deriving a face is shaping-cache work, so SetStyle only
// re-derives when family or size actually changed.
const fontSizeEpsilon = 0.001

// Painter draws shapes, text, and images onto a Surface, driven by a
// single Style value. It is an immediate-mode API: operations rasterize
// straight onto the surface canvas in call order.
//
// Painter is single-threaded, like the Surface it draws on.
type Painter struct {
	surface *surface.Surface
	style   Style

	// Current text face and the parameters it was derived from.
	face       text.Face
	primary    *typeface.Typeface
	faceFamily string
	faceSize   float64

	typefaces *typeface.Cache
	images    *imagecache.Cache

	stack []painterState
}

// painterState is one Save snapshot: the style plus the derived face so
// Restore does not pay for re-deriving it.
type painterState struct {
	style      Style
	face       text.Face
	primary    *typeface.Typeface
	faceFamily string
	faceSize   float64
}

// Option configures a Painter.
type Option func(*Painter)

// WithTypefaceCache makes the painter resolve fonts through the given
// cache instead of the shared default.
func WithTypefaceCache(c *typeface.Cache) Option {
	return func(p *Painter) { p.typefaces = c }
}

// WithImageCache makes the painter load images through the given cache
// instead of the shared default.
func WithImageCache(c *imagecache.Cache) Option {
	return func(p *Painter) { p.images = c }
}

// New creates a Painter bound to the given surface, starting from
// DefaultStyle.
func New(s *surface.Surface, opts ...Option) *Painter {
	p := &Painter{
		surface:   s,
		typefaces: typeface.Default,
		images:    imagecache.Default,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.SetStyle(DefaultStyle())
	return p
}

// SetStyle replaces the current style. The text face is re-derived only
// when the font family or size changed; color and geometry updates are
// free.
func (p *Painter) SetStyle(style Style) {
	needFace := p.face == nil ||
		style.FontFamily != p.faceFamily ||
		math.Abs(style.FontSize-p.faceSize) > fontSizeEpsilon
	p.style = style
	if needFace {
		p.primary = p.typefaces.Resolve(style.FontFamily)
		p.face = p.primary.Face(style.FontSize)
		p.faceFamily = style.FontFamily
		p.faceSize = style.FontSize
	}
}

// GetStyle returns the current style.
func (p *Painter) GetStyle() Style { return p.style }

// Save pushes the current style onto the state stack and saves the
// canvas transform and clip.
func (p *Painter) Save() {
	p.stack = append(p.stack, painterState{
		style:      p.style,
		face:       p.face,
		primary:    p.primary,
		faceFamily: p.faceFamily,
		faceSize:   p.faceSize,
	})
	p.surface.Canvas().Push()
}

// Restore pops the most recent Save. On an empty stack it is a no-op;
// the canvas is only popped when a matching Push exists, so the style
// stack and the canvas stack stay depth-synchronized.
func (p *Painter) Restore() {
	if len(p.stack) == 0 {
		return
	}
	st := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.style = st.style
	p.face = st.face
	p.primary = st.primary
	p.faceFamily = st.faceFamily
	p.faceSize = st.faceSize
	p.surface.Canvas().Pop()
}

// ClearAll fills the whole surface with the current fill color,
// ignoring transform and clip.
func (p *Painter) ClearAll() {
	p.surface.Canvas().ClearWithColor(toEngineColor(ParseColor(p.style.FillColor)))
}

// Translate moves the origin of subsequent drawing by (dx, dy).
func (p *Painter) Translate(dx, dy float64) {
	p.surface.Canvas().Translate(dx, dy)
}

// Scale scales subsequent drawing by (sx, sy).
func (p *Painter) Scale(sx, sy float64) {
	p.surface.Canvas().Scale(sx, sy)
}

// Clip intersects the clip region with the given rectangle. Clipping
// only tightens; use Save/Restore to widen again.
func (p *Painter) Clip(x, y, w, h float64) {
	p.surface.Canvas().ClipRect(x, y, w, h)
}

// FillRect fills a rectangle, rounded when the style carries a border
// radius. A style shadow is drawn first, offset by its own x/y.
func (p *Painter) FillRect(x, y, w, h float64) {
	c := p.surface.Canvas()
	if p.style.Shadow != nil {
		p.drawRectShadow(x, y, w, h)
	}
	c.SetColor(ParseColor(p.style.FillColor))
	p.rectPath(x, y, w, h)
	c.Fill()
}

// StrokeRect strokes a rectangle outline, rounded when the style
// carries a border radius. A style shadow is drawn first.
func (p *Painter) StrokeRect(x, y, w, h float64) {
	c := p.surface.Canvas()
	if p.style.Shadow != nil {
		p.drawRectShadow(x, y, w, h)
	}
	c.SetColor(ParseColor(p.style.effectiveStrokeColor()))
	c.SetLineWidth(p.style.StrokeWidth)
	p.rectPath(x, y, w, h)
	c.Stroke()
}

// FillCircle fills a circle centered at (cx, cy).
func (p *Painter) FillCircle(cx, cy, r float64) {
	c := p.surface.Canvas()
	c.SetColor(ParseColor(p.style.FillColor))
	c.DrawCircle(cx, cy, r)
	c.Fill()
}

// StrokeCircle strokes a circle outline centered at (cx, cy).
func (p *Painter) StrokeCircle(cx, cy, r float64) {
	c := p.surface.Canvas()
	c.SetColor(ParseColor(p.style.effectiveStrokeColor()))
	c.SetLineWidth(p.style.StrokeWidth)
	c.DrawCircle(cx, cy, r)
	c.Stroke()
}

// rectPath builds the rectangle path, rounded when the style carries a
// border radius.
func (p *Painter) rectPath(x, y, w, h float64) {
	c := p.surface.Canvas()
	if r := p.style.BorderRadius; r > 0 {
		c.DrawRoundedRectangle(x, y, w, h, r)
	} else {
		c.DrawRectangle(x, y, w, h)
	}
}

// FillText draws text with y as the baseline, in the fill color. The
// string is segmented by emoji coverage and each run drawn with its
// typeface; the engine positions glyphs on the baseline natively.
func (p *Painter) FillText(s string, x, y float64) {
	p.drawText(s, x, y)
}

// StrokeText draws text with y as the baseline. Glyphs render as
// filled outlines in the fill color, matching FillText; the stroke
// color and width do not apply to text.
func (p *Painter) StrokeText(s string, x, y float64) {
	p.drawText(s, x, y)
}

func (p *Painter) drawText(s string, x, y float64) {
	if s == "" {
		return
	}
	c := p.surface.Canvas()
	c.SetColor(ParseColor(p.style.FillColor))
	// The engine draws strings in device space, so apply the canvas
	// transform to the baseline point here.
	x, y = c.TransformPoint(x, y)
	for _, seg := range p.typefaces.Segment(s, p.primary) {
		face := p.face
		if seg.Typeface != p.primary {
			face = seg.Typeface.Face(p.faceSize)
		}
		c.SetFont(face)
		c.DrawString(seg.Text, x, y)
		x += face.Advance(seg.Text)
	}
	c.SetFont(p.face)
}

// MeasureText returns the advance width of the text in the current
// style, summing per-run widths across font fallback segments. The
// empty string measures 0 without touching the engine.
func (p *Painter) MeasureText(s string) float64 {
	if s == "" {
		return 0
	}
	var w float64
	for _, seg := range p.typefaces.Segment(s, p.primary) {
		face := p.face
		if seg.Typeface != p.primary {
			face = seg.Typeface.Face(p.faceSize)
		}
		w += face.Advance(seg.Text)
	}
	return w
}

// GetFontMetrics returns the vertical metrics of the current text face.
func (p *Painter) GetFontMetrics() FontMetrics {
	m := p.face.Metrics()
	return Metrics(m.Ascent, m.Descent, m.LineGap)
}

// DrawImage draws the image at path stretched into the destination
// rectangle. The decoded image is cached when useCache is set.
func (p *Painter) DrawImage(path string, x, y, w, h float64, useCache bool) error {
	img, err := p.images.Load(path, useCache)
	if err != nil {
		return err
	}
	p.surface.Canvas().DrawImageEx(img, drawImageOptions(x, y, w, h))
	return nil
}

// MeasureImage returns the pixel dimensions of the image at path.
func (p *Painter) MeasureImage(path string, useCache bool) (width, height int, err error) {
	return p.images.Measure(path, useCache)
}

// Flush is a placeholder for per-painter flushing. Submission happens
// at surface level via Surface.FlushAndSubmit, once per frame.
func (p *Painter) Flush() {}
