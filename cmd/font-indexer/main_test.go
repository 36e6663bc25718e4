package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/image/font/gofont/goregular"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func writeFont(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func defaultSettings() settings {
	return settings{
		text:      "Hello",
		outputDir: "renders",
		htmlFile:  "index.html",
		fontSize:  24,
		fontDir:   "fonts",
		number:    -1,
	}
}

func TestBuildIndexEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, filepath.Join(dir, "fonts", "goregular.ttf"), goregular.TTF)
	writeFont(t, filepath.Join(dir, "fonts", "corrupt.ttf"), []byte("this is not a font"))
	chdir(t, dir)

	if err := buildIndex(defaultSettings()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile("index.html")
	if err != nil {
		t.Fatal(err)
	}
	raw := string(data)
	if !strings.Contains(raw, "Total fonts processed: 1") {
		t.Error("missing total counter, corrupt font seems to be counted")
	}
	if !strings.Contains(raw, "Fonts with quality issues (&#10060;): 0") {
		t.Error("missing issue counter")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.Find("table#fontTable tbody tr").Length(); n != 1 {
		t.Errorf("table rows = %d, want 1", n)
	}
	if raw2 := doc.Find("td.filename-col").First().Text(); raw2 != "goregular.ttf" {
		t.Errorf("filename cell = %q, want goregular.ttf", raw2)
	}

	if _, err := os.Stat(filepath.Join("renders", "goregular.ttf.png")); err != nil {
		t.Errorf("thumbnail missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join("renders", "corrupt.ttf.png")); err == nil {
		t.Error("thumbnail written for corrupt font")
	}
}

func TestBuildIndexNumberCap(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		writeFont(t, filepath.Join(dir, "fonts", name+".ttf"), goregular.TTF)
	}
	chdir(t, dir)

	s := defaultSettings()
	s.number = 3
	if err := buildIndex(s); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile("index.html")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if n := doc.Find("table#fontTable tbody tr").Length(); n != 3 {
		t.Errorf("table rows = %d, want 3", n)
	}

	entries, err := os.ReadDir("renders")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("rendered %d thumbnails, want 3", len(entries))
	}
}

func TestBuildIndexReadme(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, filepath.Join(dir, "fonts", "goregular.ttf"), goregular.TTF)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# My fonts\n"), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	if err := buildIndex(defaultSettings()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile("index.html")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Find("#readme h1").Length() != 1 {
		t.Error("embedded readme heading not found")
	}
}
