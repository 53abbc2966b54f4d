package paint

import (
	"image/color"
	"math"
)

// drawRectShadow renders the style's shadow behind a rectangle, offset
// by the shadow's own x/y. A hard-edged shadow is a single fill. A
// blurred shadow fills the shape shrunk by the blur radius and then
// strokes concentric 1.5px rings outward with Gaussian opacity
// falloff, approximating a true Gaussian blur of the shape edge.
func (p *Painter) drawRectShadow(x, y, w, h float64) {
	sh := p.style.Shadow
	c := p.surface.Canvas()
	col := ParseColor(sh.Color)
	sx := x + sh.OffsetX
	sy := y + sh.OffsetY

	sigma := sh.blurSigma()
	if sigma <= 0 {
		c.SetColor(col)
		p.rectPath(sx, sy, w, h)
		c.Fill()
		return
	}

	br := math.Ceil(sigma)
	if m := math.Min(w/2-2, h/2-2); br > m {
		br = m
	}
	if br < 1 {
		// Shape too thin to shrink and ring; fall back to a hard fill.
		c.SetColor(col)
		p.rectPath(sx, sy, w, h)
		c.Fill()
		return
	}
	blurs := edgeBlurFactors(sigma, int(br))

	c.SetColor(col)
	p.rectPath(sx+br, sy+br, w-2*br, h-2*br)
	c.Fill()

	// 1.5 is the ring width that keeps adjacent strokes overlapping
	// without doubling coverage.
	c.SetLineWidth(1.5)
	for i, b := range blurs {
		bo := br - float64(i)
		c.SetColor(scaleAlpha(col, b))
		p.rectPath(sx+bo, sy+bo, w-2*bo, h-2*bo)
		c.Stroke()
	}
	c.SetLineWidth(p.style.StrokeWidth)
}

// edgeBlurFactors returns per-ring opacity factors for the stroke-ring
// blur: ring i, at distance i from the shape edge, gets the Gaussian
// falloff exp(-(i/sigma)^2 / 2).
func edgeBlurFactors(sigma float64, radius int) []float64 {
	if radius <= 0 || sigma <= 0 {
		return nil
	}
	factors := make([]float64, radius)
	for i := range factors {
		d := float64(i) / sigma
		factors[i] = math.Exp(-(d * d) / 2)
	}
	return factors
}

// scaleAlpha scales a color's alpha by f in [0, 1].
func scaleAlpha(col color.NRGBA, f float64) color.NRGBA {
	col.A = uint8(clamp(float64(col.A)*f, 0, 255))
	return col
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
