package scan

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindFonts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.ttf"))
	touch(t, filepath.Join(dir, "sub", "B.TTF"))
	touch(t, filepath.Join(dir, "sub", "deeper", "c.Ttf"))
	touch(t, filepath.Join(dir, "d.otf"))
	touch(t, filepath.Join(dir, "readme.txt"))

	got, err := FindFonts(dir)
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(got)

	want := []string{
		filepath.Join(dir, "a.ttf"),
		filepath.Join(dir, "sub", "B.TTF"),
		filepath.Join(dir, "sub", "deeper", "c.Ttf"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindFonts() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFontsEmpty(t *testing.T) {
	got, err := FindFonts(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("FindFonts() on empty dir = %v, want none", got)
	}
}
