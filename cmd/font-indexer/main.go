// Font-indexer renders a sample text with every TrueType font below a
// directory and writes an HTML gallery with quality heuristics.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/speedata/optionparser"

	"github.com/brainwagon/font-indexer/console"
	"github.com/brainwagon/font-indexer/font"
	"github.com/brainwagon/font-indexer/quality"
	"github.com/brainwagon/font-indexer/render"
	"github.com/brainwagon/font-indexer/report"
	"github.com/brainwagon/font-indexer/scan"
)

type settings struct {
	text      string
	outputDir string
	htmlFile  string
	fontSize  float64
	slowCheck bool
	fontDir   string
	number    int
}

func buildIndex(s settings) error {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return err
	}

	fonts, err := scan.FindFonts(s.fontDir)
	if err != nil {
		return err
	}
	// The cap applies to the discovery-order list. The table is built from
	// the alphabetically sorted remainder.
	if s.number >= 0 && s.number < len(fonts) {
		fonts = fonts[:s.number]
	}
	sort.Strings(fonts)

	builder := report.NewBuilder(s.htmlFile, s.text)
	readme, err := report.ReadmeHTML("README.md")
	if err != nil {
		console.LogWarn("Cannot embed README.md: ", err)
	}
	builder.Readme = readme

	progress := console.NewProgress(len(fonts), "Processing fonts")
	for _, fontPath := range fonts {
		progress.Add(1)
		base := filepath.Base(fontPath)

		face, err := font.LoadFace(fontPath)
		if err != nil {
			progress.Println("Skipping " + base + " (unreadable font)")
			console.LogWithFields(console.Fields{"font": base}).Debug(err)
			continue
		}
		if !quality.CheckCoverage(face) {
			progress.Println("Skipping " + base + " (missing required characters)")
			continue
		}

		info := face.Info()
		res := quality.CheckMetrics(face)
		if s.slowCheck && res.OK {
			res = quality.SlowCheck(face, s.fontSize)
		}

		img, err := render.Thumbnail(s.text, face, s.fontSize)
		if err != nil {
			progress.Println("Skipping " + base + " (cannot render)")
			console.LogWithFields(console.Fields{"font": base}).Debug(err)
			continue
		}
		imagePath := filepath.Join(s.outputDir, base+".png")
		if err := render.WritePNG(img, imagePath); err != nil {
			progress.Println("Skipping " + base + " (cannot write image)")
			console.LogWithFields(console.Fields{"font": base}).Debug(err)
			continue
		}

		builder.Add(report.Row{
			FullName:  info.FullName,
			FileName:  base,
			Style:     info.Style,
			Quality:   res,
			ImagePath: imagePath,
			FontPath:  relPath(fontPath),
		})
	}
	progress.Finish()

	return builder.WriteHTML()
}

// relPath makes the path relative to the working directory so the
// download links in the HTML file stay portable.
func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

func dothings() error {
	s := settings{
		text:      "The quick brown fox jumps over the lazy dog.",
		outputDir: "renders",
		htmlFile:  "index.html",
		fontDir:   ".",
		number:    -1,
	}
	fontSize := "24"
	number := ""

	op := optionparser.NewOptionParser()
	op.Banner = "Usage: font-indexer [options]"
	op.On("--text TEXT", "The text to render for each font", &s.text)
	op.On("--output-dir DIR", "The directory to save rendered images", &s.outputDir)
	op.On("--html-file FILE", "The name of the output HTML file", &s.htmlFile)
	op.On("--font-size SIZE", "The font size to use for rendering", &fontSize)
	op.On("--slow-check", "Perform a slower, more thorough check for font quality issues", &s.slowCheck)
	op.On("--font-dir DIR", "Directory to search for TrueType fonts", &s.fontDir)
	op.On("-n", "--number NUM", "Limit the total number of files converted, counted before sorting", &number)
	if err := op.Parse(); err != nil {
		return err
	}

	size, err := strconv.Atoi(fontSize)
	if err != nil {
		return fmt.Errorf("--font-size: %w", err)
	}
	s.fontSize = float64(size)

	if number != "" {
		if s.number, err = strconv.Atoi(number); err != nil {
			return fmt.Errorf("--number: %w", err)
		}
	}

	return buildIndex(s)
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
