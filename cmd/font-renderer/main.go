// Font-renderer renders a string with a given font into a PNG file and
// can print advance or bounding box metrics for single characters.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/speedata/optionparser"

	"github.com/brainwagon/font-indexer/font"
	"github.com/brainwagon/font-indexer/render"
)

type settings struct {
	fontSize    float64
	text        string
	fontPath    string
	output      string
	preview     bool
	inspect     string
	inspectBBox string
}

func firstRune(s string) (rune, error) {
	for _, r := range s {
		return r, nil
	}
	return 0, errors.New("empty character argument")
}

func inspectChar(fontPath, char string) error {
	r, err := firstRune(char)
	if err != nil {
		return err
	}
	face, err := font.LoadFace(fontPath)
	if err != nil {
		return fmt.Errorf("could not inspect metrics for %s: %w", fontPath, err)
	}
	if !face.HasGlyph(r) {
		return fmt.Errorf("character %q not found in font", r)
	}
	adv, err := face.AdvanceX(r)
	if err != nil {
		return fmt.Errorf("could not inspect metrics for %s: %w", fontPath, err)
	}

	fmt.Printf("Metrics for character %q in %s:\n", r, filepath.Base(fontPath))
	fmt.Println("  Advance Width:", adv.Round())
	fmt.Println("  Units Per Em:", face.UnitsPerEm())
	return nil
}

func inspectGlyphBBox(fontPath, char string) error {
	r, err := firstRune(char)
	if err != nil {
		return err
	}
	face, err := font.LoadFace(fontPath)
	if err != nil {
		return fmt.Errorf("could not inspect glyph bounding box for %s: %w", fontPath, err)
	}
	xmin, ymin, xmax, ymax, err := face.GlyphBounds(r)
	if err != nil {
		return fmt.Errorf("could not inspect glyph bounding box for %s: %w", fontPath, err)
	}

	fmt.Printf("Glyph bounding box for character %q in %s:\n", r, filepath.Base(fontPath))
	fmt.Println("  xMin:", xmin)
	fmt.Println("  yMin:", ymin)
	fmt.Println("  xMax:", xmax)
	fmt.Println("  yMax:", ymax)
	return nil
}

func renderToFile(s settings) error {
	if _, err := os.Stat(s.fontPath); err != nil {
		return fmt.Errorf("font file not found at %s", s.fontPath)
	}
	face, err := font.LoadFace(s.fontPath)
	if err != nil {
		return fmt.Errorf("error rendering text with %s: %w", s.fontPath, err)
	}
	img, err := render.Tight(s.text, face, s.fontSize)
	if err != nil {
		return fmt.Errorf("error rendering text with %s: %w", s.fontPath, err)
	}
	if err := render.WritePNG(img, s.output); err != nil {
		return err
	}
	fmt.Println("Successfully rendered text to", s.output)

	if s.preview {
		if err := exec.Command("eog", s.output).Run(); err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				fmt.Println("eog not found. Please install it to use the --preview feature.")
				return nil
			}
			return err
		}
	}
	return nil
}

func dothings() error {
	s := settings{
		text:   "The quick brown fox jumps over the lazy dog.",
		output: "output.png",
	}
	fontSize := "24"

	op := optionparser.NewOptionParser()
	op.Banner = "Usage: font-renderer --font FILE [options]"
	op.On("--font-size SIZE", "The font size to use for rendering", &fontSize)
	op.On("--text TEXT", "The text to render", &s.text)
	op.On("--font FILE", "The path to the font file to use", &s.fontPath)
	op.On("-o", "--output FILE", "The output filename", &s.output)
	op.On("--preview", "Preview the output image using eog", &s.preview)
	op.On("--inspect CHAR", "Inspect the metrics of a specific character in the font", &s.inspect)
	op.On("--inspect-glyph-bbox CHAR", "Inspect the bounding box of a specific glyph in the font", &s.inspectBBox)
	if err := op.Parse(); err != nil {
		return err
	}
	if s.fontPath == "" {
		op.Help()
		return errors.New("the --font option is required")
	}

	size, err := strconv.Atoi(fontSize)
	if err != nil {
		return fmt.Errorf("--font-size: %w", err)
	}
	s.fontSize = float64(size)

	if s.inspect != "" {
		return inspectChar(s.fontPath, s.inspect)
	}
	if s.inspectBBox != "" {
		return inspectGlyphBBox(s.fontPath, s.inspectBBox)
	}
	return renderToFile(s)
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
