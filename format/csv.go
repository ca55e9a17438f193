package format

import "strings"

// CSVFlag selects how CSV lines and columns map to names. Flags combine
// with |.
type CSVFlag uint8

const (
	// FirstLineAsNames takes the names of cells from the first line when
	// reading and writes the cell names of the first line as a header.
	FirstLineAsNames CSVFlag = 1 << iota
	// FirstColumnAsNames takes the name of each line from its first cell
	// when reading and writes line names as a leading column.
	FirstColumnAsNames
	// UseCustomSeparator replaces the default ',' separator.
	UseCustomSeparator
)

func (f CSVFlag) String() string {
	var parts []string
	if f&FirstLineAsNames != 0 {
		parts = append(parts, "firstLineAsNames")
	}
	if f&FirstColumnAsNames != 0 {
		parts = append(parts, "firstColumnAsNames")
	}
	if f&UseCustomSeparator != 0 {
		parts = append(parts, "useCustomSeparator")
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}
