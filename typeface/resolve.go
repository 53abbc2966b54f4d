package typeface

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fallbackFamilies is tried in order when the requested family is not
// installed. It covers the default UI fonts of the major platforms plus
// CJK-capable families so non-Latin text keeps rendering.
var fallbackFamilies = []string{
	"Noto Sans",
	"Noto Sans CJK JP",
	"Hiragino Sans",
	"Hiragino Kaku Gothic ProN",
	"Yu Gothic",
	"Meiryo",
	"Microsoft YaHei",
	"PingFang SC",
	"SF Pro",
	"Segoe UI",
	"Roboto",
	"Arial",
	"Helvetica",
}

var (
	scanOnce    sync.Once
	systemFonts []fontscan.Footprint
)

// scanSystemFonts discovers installed fonts once per process. The scan
// result is cached on disk by fontscan, so subsequent processes start
// fast. A failed scan logs a warning and leaves the list empty; the
// embedded fallback still covers resolution.
func scanSystemFonts() []fontscan.Footprint {
	scanOnce.Do(func() {
		cacheDir := ""
		if dir, err := os.UserCacheDir(); err == nil {
			cacheDir = filepath.Join(dir, "gogpu-paint")
		}
		fonts, err := fontscan.SystemFonts(nil, cacheDir)
		if err != nil {
			gg.Logger().Warn("system font scan failed", "error", err)
			return
		}
		gg.Logger().Debug("system fonts scanned", "count", len(fonts))
		systemFonts = fonts
	})
	return systemFonts
}

// normalizeFamily folds a family name for comparison.
func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// findSystemFamily loads the first installed font whose family matches
// the given name, or nil when the family is not installed or fails to
// load.
func findSystemFamily(family string) *Typeface {
	want := normalizeFamily(family)
	if want == "" {
		return nil
	}
	for _, fp := range scanSystemFonts() {
		if normalizeFamily(fp.Family) != want {
			continue
		}
		src, err := text.NewFontSourceFromFile(fp.Location.File)
		if err != nil {
			gg.Logger().Warn("failed to load system font",
				"family", fp.Family, "path", fp.Location.File, "error", err)
			continue
		}
		return &Typeface{Family: fp.Family, Source: src}
	}
	return nil
}

// lastResort is the embedded Go Regular typeface, guaranteed present so
// resolution can never come up empty.
var lastResort = sync.OnceValue(func() *Typeface {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		// The embedded font data is known to parse.
		panic("typeface: parsing embedded Go Regular: " + err.Error())
	}
	return &Typeface{Family: "Go Regular", Source: src}
})

// resolveFamily walks the resolution order: exact match for the
// requested family, then the fallback list, then the embedded font.
func resolveFamily(family string) *Typeface {
	if family != "" {
		if tf := findSystemFamily(family); tf != nil {
			return tf
		}
	}
	for _, fb := range fallbackFamilies {
		if tf := findSystemFamily(fb); tf != nil {
			return tf
		}
	}
	return lastResort()
}
