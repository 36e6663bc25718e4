package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func writeTestFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	s := settings{
		fontSize: 24,
		text:     "Hello",
		fontPath: writeTestFont(t),
		output:   out,
	}
	if err := renderToFile(s); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if _, err := png.Decode(r); err != nil {
		t.Errorf("output is not a valid PNG: %v", err)
	}
}

func TestRenderToFileMissingFont(t *testing.T) {
	s := settings{
		fontSize: 24,
		text:     "Hello",
		fontPath: filepath.Join(t.TempDir(), "nosuch.ttf"),
		output:   filepath.Join(t.TempDir(), "out.png"),
	}
	if err := renderToFile(s); err == nil {
		t.Error("renderToFile() with missing font: no error")
	}
}

func TestInspectChar(t *testing.T) {
	path := writeTestFont(t)
	if err := inspectChar(path, "A"); err != nil {
		t.Errorf("inspectChar(A) = %v", err)
	}
	if err := inspectChar(path, "\uE777"); err == nil {
		t.Error("inspectChar(private use rune): no error")
	}
	if err := inspectChar(path, ""); err == nil {
		t.Error("inspectChar with empty argument: no error")
	}
}

func TestInspectGlyphBBox(t *testing.T) {
	path := writeTestFont(t)
	if err := inspectGlyphBBox(path, "A"); err != nil {
		t.Errorf("inspectGlyphBBox(A) = %v", err)
	}
	if err := inspectGlyphBBox(path, "\uE777"); err == nil {
		t.Error("inspectGlyphBBox(private use rune): no error")
	}
}
