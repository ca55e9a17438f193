// Package format names the text formats vdoc reads and writes.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	XMLFormat
	INIFormat
	CSVFormat
	YAMLFormat
	// TreeFormat is the indented listing of names, types and values.
	// It is write only.
	TreeFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"x":    XMLFormat,
		"xml":  XMLFormat,
		"i":    INIFormat,
		"ini":  INIFormat,
		"c":    CSVFormat,
		"csv":  CSVFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"t":    TreeFormat,
		"tree": TreeFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case XMLFormat:
		return []byte("xml"), nil
	case INIFormat:
		return []byte("ini"), nil
	case CSVFormat:
		return []byte("csv"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TreeFormat:
		return []byte("tree"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsCSV() bool  { return f == CSVFormat }
func (f Format) IsTree() bool { return f == TreeFormat }

// CanParse reports whether documents in f can be read.
func (f Format) CanParse() bool { return f >= JSONFormat && f <= YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case XMLFormat:
		return ".xml"
	case INIFormat:
		return ".ini"
	case CSVFormat:
		return ".csv"
	case YAMLFormat:
		return ".yaml"
	case TreeFormat:
		return ".txt"
	default:
		return ""
	}
}

// FromPath returns the format named by the extension of path.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yml":
		return YAMLFormat, nil
	case ".conf", ".cfg":
		return INIFormat, nil
	}
	for _, f := range AllFormats() {
		if f.Suffix() == ext {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: no format for %q", ErrBadFormat, path)
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, XMLFormat, INIFormat, CSVFormat, TreeFormat}
}
