// Package report builds the static HTML font index.
package report

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"os"

	"github.com/yuin/goldmark"

	"github.com/brainwagon/font-indexer/quality"
)

// Row is one entry of the font table.
type Row struct {
	FullName  string
	FileName  string
	Style     string
	Quality   quality.Result
	ImagePath string
	FontPath  string
}

// Builder collects table rows and writes the final HTML document.
type Builder struct {
	HTMLFile string
	Text     string
	Readme   template.HTML

	rows   []Row
	issues int
}

// NewBuilder creates a Builder writing to htmlFile. text is the sample
// text shown in the introduction.
func NewBuilder(htmlFile, text string) *Builder {
	return &Builder{
		HTMLFile: htmlFile,
		Text:     text,
	}
}

// Add appends a row and updates the counters.
func (b *Builder) Add(row Row) {
	b.rows = append(b.rows, row)
	if !row.Quality.OK {
		b.issues++
	}
}

// Total returns the number of fonts added to the report.
func (b *Builder) Total() int {
	return len(b.rows)
}

// Issues returns the number of added fonts that failed a quality check.
func (b *Builder) Issues() int {
	return b.issues
}

// WriteHTML writes the report to the Builder's HTML file. The write is
// one-shot, there is no atomic rename.
func (b *Builder) WriteHTML() error {
	w, err := os.Create(b.HTMLFile)
	if err != nil {
		return err
	}
	if err = b.render(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (b *Builder) render(w io.Writer) error {
	return tmpl.Execute(w, struct {
		Total  int
		Issues int
		Readme template.HTML
		Text   string
		Rows   []Row
	}{
		Total:  b.Total(),
		Issues: b.issues,
		Readme: b.Readme,
		Text:   b.Text,
		Rows:   b.rows,
	})
}

// ReadmeHTML converts the markdown file at path to HTML for embedding in
// the report. A missing file is not an error, it returns empty content.
func ReadmeHTML(path string) (template.HTML, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
