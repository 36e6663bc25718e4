// Package scan discovers font files on the disk.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindFonts walks the directory tree rooted at dir and returns the paths
// of all TrueType fonts. The extension check is case insensitive. The
// paths are returned in walk order.
func FindFonts(dir string) ([]string, error) {
	var fonts []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".ttf") {
			fonts = append(fonts, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fonts, nil
}
