package paint

import "image/color"

// ParseColor parses a CSS-style hex color string into a color.NRGBA.
// Supported formats: "RRGGBB" and "RRGGBBAA", with an optional leading '#'.
// A six-digit string is fully opaque; an eight-digit string carries its
// alpha in the last byte. Any other length yields opaque black.
//
// Malformed hex digits do not fail: an unparseable color component reads
// as 0 and an unparseable alpha component reads as 255, so rendering can
// proceed with a predictable color instead of erroring mid-frame.
func ParseColor(s string) color.NRGBA {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 6:
		return color.NRGBA{
			R: parseHexByte(s[0:2], 0),
			G: parseHexByte(s[2:4], 0),
			B: parseHexByte(s[4:6], 0),
			A: 255,
		}
	case 8:
		return color.NRGBA{
			R: parseHexByte(s[0:2], 0),
			G: parseHexByte(s[2:4], 0),
			B: parseHexByte(s[4:6], 0),
			A: parseHexByte(s[6:8], 255),
		}
	default:
		return color.NRGBA{A: 255}
	}
}

// parseHexByte parses a two-digit hex component, returning fallback when
// any digit is not valid hex.
func parseHexByte(s string, fallback uint8) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += c - '0'
		case 'a' <= c && c <= 'f':
			v += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v += c - 'A' + 10
		default:
			return fallback
		}
	}
	return v
}
