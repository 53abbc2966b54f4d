package paint

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{
			name: "six digit with hash",
			in:   "#3498db",
			want: color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255},
		},
		{
			name: "six digit without hash",
			in:   "ff8000",
			want: color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 255},
		},
		{
			name: "eight digit carries alpha",
			in:   "#3498db80",
			want: color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0x80},
		},
		{
			name: "eight digit fully transparent",
			in:   "00000000",
			want: color.NRGBA{},
		},
		{
			name: "uppercase digits",
			in:   "#ABCDEF",
			want: color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 255},
		},
		{
			name: "bad component reads as zero",
			in:   "#zz98db",
			want: color.NRGBA{R: 0, G: 0x98, B: 0xdb, A: 255},
		},
		{
			name: "bad alpha reads as opaque",
			in:   "#3498dbzz",
			want: color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255},
		},
		{
			name: "short string is opaque black",
			in:   "#fff",
			want: color.NRGBA{A: 255},
		},
		{
			name: "long string is opaque black",
			in:   "#aabbccddee",
			want: color.NRGBA{A: 255},
		},
		{
			name: "empty string is opaque black",
			in:   "",
			want: color.NRGBA{A: 255},
		},
		{
			name: "lone hash is opaque black",
			in:   "#",
			want: color.NRGBA{A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.in); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
