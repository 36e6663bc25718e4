// Package quality contains heuristic checks for common font defects such
// as missing glyphs, broken advance widths and suspicious spacing.
package quality

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/brainwagon/font-indexer/render"
)

// Face is the narrow metric surface the fast checkers need. *font.Face
// implements it.
type Face interface {
	HasGlyph(r rune) bool
	AdvanceX(r rune) (fixed.Int26_6, error)
	UnitsPerEm() int32
}

// Sizer creates sized faces for the rendering based checks. *font.Face
// implements it.
type Sizer interface {
	NewSizedFace(points float64) (xfont.Face, error)
}

// Alphanumerics is the set of characters every indexed font must provide.
const Alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Heuristic thresholds. These are fixed, not configurable.
const (
	// maxAdvanceFactor flags glyphs wider than this many em squares.
	maxAdvanceFactor = 10
	// maxSpaceFactor flags a space wider than this multiple of the mean
	// alphanumeric advance width.
	maxSpaceFactor = 3
	// kerningFactor flags a width delta larger than this multiple of a
	// single rendered space.
	kerningFactor = 4
)

// Result is the outcome of a quality check. Reason is empty when OK.
type Result struct {
	OK     bool
	Reason string
}

func fail(format string, args ...interface{}) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// CheckCoverage reports whether the face maps every character in
// Alphanumerics to a glyph.
func CheckCoverage(f Face) bool {
	for _, r := range Alphanumerics {
		if !f.HasGlyph(r) {
			return false
		}
	}
	return true
}

// CheckMetrics inspects the advance widths of the alphanumeric glyphs
// and of the space glyph for obviously broken values.
func CheckMetrics(f Face) Result {
	maxAdvance := fixed.I(int(f.UnitsPerEm()) * maxAdvanceFactor)

	var widths []fixed.Int26_6
	for _, r := range Alphanumerics {
		if !f.HasGlyph(r) {
			continue
		}
		adv, err := f.AdvanceX(r)
		if err != nil {
			return fail("Could not check metrics: %v", err)
		}
		widths = append(widths, adv)

		if adv == 0 {
			return fail("Character '%c' has zero width", r)
		}
		if adv > maxAdvance {
			return fail("Character '%c' has excessively large width", r)
		}
	}
	if len(widths) == 0 {
		return fail("No alphanumeric characters found")
	}

	if !f.HasGlyph(' ') {
		return fail("No space character")
	}
	spaceAdvance, err := f.AdvanceX(' ')
	if err != nil {
		return fail("Could not check metrics: %v", err)
	}

	var sum int64
	for _, w := range widths {
		sum += int64(w)
	}
	average := sum / int64(len(widths))
	if int64(spaceAdvance) > average*maxSpaceFactor {
		return fail("Space character is excessively wide")
	}

	return Result{OK: true}
}

// SlowCheck renders probe strings with and without inter-letter spaces
// and compares their pixel widths. A delta well beyond the width of the
// inserted spaces hints at kerning or spacing defects. This is a
// heuristic; false positives and negatives are expected.
func SlowCheck(f Sizer, size float64) Result {
	face, err := f.NewSizedFace(size)
	if err != nil {
		return fail("Could not perform slow check: %v", err)
	}
	defer face.Close()

	withSpaces := render.Width("A B C D E", face)
	noSpaces := render.Width("ABCDE", face)
	space := render.Width(" ", face)

	if withSpaces-noSpaces > space*kerningFactor {
		return fail("Potential kerning issue")
	}
	return Result{OK: true}
}
