package encode

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/ir"
)

func writeCSV(buf *bytes.Buffer, node ir.Node, es *EncState) error {
	if err := needContainer(node); err != nil {
		return err
	}
	cells := -1
	i := 0
	for line := range node.Children() {
		if !line.Type().IsContainer() || !allScalars(line) {
			return fmt.Errorf("%w: csv line %d is not a list of values", ErrShape, i)
		}
		if cells >= 0 && line.Len() != cells {
			return fmt.Errorf("%w: csv line %d has %d cells, want %d", ErrShape, i, line.Len(), cells)
		}
		cells = line.Len()
		i++
	}
	w := csv.NewWriter(buf)
	if es.csvFlags&format.UseCustomSeparator != 0 {
		w.Comma = es.csvSep
	}
	names := es.csvFlags&format.FirstColumnAsNames != 0
	if first := node.FirstChild(); es.csvFlags&format.FirstLineAsNames != 0 && first.Valid() {
		var header []string
		if names {
			header = append(header, "")
		}
		for c := range first.Children() {
			header = append(header, c.Name())
		}
		if err := w.Write(header); err != nil {
			return err
		}
	}
	for line := range node.Children() {
		var rec []string
		if names {
			rec = append(rec, line.Name())
		}
		for c := range line.Children() {
			rec = append(rec, text(c))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
