// Package typeface resolves font families to loaded font sources and
// segments text by emoji coverage for font fallback.
//
// Resolution never fails: a requested family falls back through a fixed
// list of common UI families discovered on the system, and finally to
// an embedded Go Regular, so callers always get a usable typeface.
// Resolved typefaces are cached for the process lifetime.
package typeface
