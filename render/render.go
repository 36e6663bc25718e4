// Package render rasterizes text into PNG images.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/brainwagon/font-indexer/font"
)

// padding is the space in pixels between the text and each image edge.
const padding = 10

// Thumbnail renders the text on a transparent canvas whose height is
// derived from the face ascent and descent, so that all thumbnails of a
// font line up regardless of the sample text. The text is drawn in black
// with the baseline at padding + ascent.
func Thumbnail(text string, f *font.Face, size float64) (*image.RGBA, error) {
	face, err := f.NewSizedFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	bounds, _ := xfont.BoundString(face, text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()

	metrics := face.Metrics()
	imgWidth := textWidth + 2*padding
	imgHeight := (metrics.Ascent + metrics.Descent).Ceil() + 2*padding

	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	d := xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(padding, padding+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)
	return img, nil
}

// Tight renders the text on a transparent canvas sized to the tight
// bounding box of the text plus padding.
func Tight(text string, f *font.Face, size float64) (*image.RGBA, error) {
	face, err := f.NewSizedFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	bounds, _ := xfont.BoundString(face, text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, textWidth+2*padding, textHeight+2*padding))
	d := xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		// Shift the pen so the tight box starts at the padding.
		Dot: fixed.Point26_6{
			X: fixed.I(padding) - bounds.Min.X,
			Y: fixed.I(padding) - bounds.Min.Y,
		},
	}
	d.DrawString(text)
	return img, nil
}

// WritePNG encodes the image to the named file. The write is one-shot,
// there is no atomic rename.
func WritePNG(img *image.RGBA, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(w, img); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Width returns the advance width of the string in pixels when drawn
// with the given face.
func Width(s string, face xfont.Face) int {
	return xfont.MeasureString(face, s).Ceil()
}
