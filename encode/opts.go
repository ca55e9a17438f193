package encode

import "github.com/vdoc-go/vdoc/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return newState(opts).format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Indent sets the number of spaces per level of XML and tree output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// CSVFlags sets which names CSV output carries.
func CSVFlags(f format.CSVFlag) EncodeOption {
	return func(es *EncState) { es.csvFlags = f }
}

// CSVSeparator sets the separator written when CSVFlags includes
// format.UseCustomSeparator.
func CSVSeparator(r rune) EncodeOption {
	return func(es *EncState) { es.csvSep = r }
}
