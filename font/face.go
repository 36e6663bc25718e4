package font

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/brainwagon/font-indexer/console"
)

const hinting = font.HintingNone

// Face represents a font file with no specific size. Metric queries are
// answered in font units. To draw text, create a sized face with
// NewSizedFace.
type Face struct {
	Filename     string
	unitsPerEm   int32
	sfntobj      *sfnt.Font
	sfntbuffer   sfnt.Buffer
	ToRune       map[sfnt.GlyphIndex]rune
	ToGlyphIndex map[rune]sfnt.GlyphIndex
}

// LoadFace reads a font file from the disk. The file is read into memory
// and closed before LoadFace returns.
func LoadFace(filename string) (*Face, error) {
	console.LogTrace("Create new face")
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	face := Face{
		Filename:     filename,
		unitsPerEm:   int32(f.UnitsPerEm()),
		sfntobj:      f,
		sfntbuffer:   sfnt.Buffer{},
		ToRune:       make(map[sfnt.GlyphIndex]rune),
		ToGlyphIndex: make(map[rune]sfnt.GlyphIndex),
	}
	return &face, nil
}

// UnitsPerEm returns the number of font units per em square.
func (f *Face) UnitsPerEm() int32 {
	return f.unitsPerEm
}

// GetIndex returns the glyph index of the rune r. Index 0 means the
// character map has no entry for r.
func (f *Face) GetIndex(r rune) (sfnt.GlyphIndex, error) {
	if idx, ok := f.ToGlyphIndex[r]; ok {
		return idx, nil
	}

	idx, err := f.sfntobj.GlyphIndex(&f.sfntbuffer, r)
	if err != nil {
		return 0, err
	}
	f.ToRune[idx] = r
	f.ToGlyphIndex[r] = idx
	return idx, nil
}

// HasGlyph reports whether the rune r maps to a glyph.
func (f *Face) HasGlyph(r rune) bool {
	idx, err := f.GetIndex(r)
	return err == nil && idx != 0
}

// AdvanceX returns the advance in horizontal direction in font units,
// as a 26.6 fixed point number.
func (f *Face) AdvanceX(r rune) (fixed.Int26_6, error) {
	idx, err := f.GetIndex(r)
	if err != nil {
		return 0, err
	}
	if idx == 0 {
		return 0, fmt.Errorf("character %q not found in font", r)
	}

	// Querying at ppem == units per em makes one pixel equal one font unit.
	adv, err := f.sfntobj.GlyphAdvance(&f.sfntbuffer, idx, fixed.I(int(f.unitsPerEm)), hinting)
	if err != nil {
		return 0, err
	}
	return adv, nil
}

// GlyphBounds returns the bounding box of the glyph for r in font units
// with the y axis pointing up, as in the font's glyf table.
func (f *Face) GlyphBounds(r rune) (xmin, ymin, xmax, ymax int, err error) {
	idx, err := f.GetIndex(r)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if idx == 0 {
		return 0, 0, 0, 0, fmt.Errorf("character %q not found in font", r)
	}

	sized, err := f.NewSizedFace(float64(f.unitsPerEm))
	if err != nil {
		return 0, 0, 0, 0, err
	}
	defer sized.Close()

	bounds, _, ok := sized.GlyphBounds(r)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("character %q not found in font", r)
	}
	// The sized face reports bounds with y pointing down.
	xmin = bounds.Min.X.Floor()
	ymin = -bounds.Max.Y.Ceil()
	xmax = bounds.Max.X.Ceil()
	ymax = -bounds.Min.Y.Floor()
	return xmin, ymin, xmax, ymax, nil
}

// NewSizedFace creates a font.Face with the given size in points at 72
// dpi, so that points equal pixels.
func (f *Face) NewSizedFace(points float64) (font.Face, error) {
	return opentype.NewFace(f.sfntobj, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: hinting,
	})
}
