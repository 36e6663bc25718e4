package font

import "golang.org/x/image/font/sfnt"

// NoValue is used for naming table entries that are absent from a font.
const NoValue = "N/A"

// Info holds the naming table entries of a font.
type Info struct {
	Family    string
	Style     string
	FullName  string
	Version   string
	Copyright string
}

// Info extracts the naming table entries of the face. Absent entries are
// set to NoValue.
func (f *Face) Info() Info {
	return Info{
		Family:    f.name(sfnt.NameIDFamily),
		Style:     f.name(sfnt.NameIDSubfamily),
		FullName:  f.name(sfnt.NameIDFull),
		Version:   f.name(sfnt.NameIDVersion),
		Copyright: f.name(sfnt.NameIDCopyright),
	}
}

func (f *Face) name(id sfnt.NameID) string {
	str, err := f.sfntobj.Name(&f.sfntbuffer, id)
	if err != nil || str == "" {
		return NoValue
	}
	return str
}
