package parse

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/vdoc-go/vdoc/format"
	"github.com/vdoc-go/vdoc/ir"
)

func parseCSV(d []byte, o *parseOpts) (ir.Node, error) {
	r := csv.NewReader(bytes.NewReader(d))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if o.csvFlags&format.UseCustomSeparator != 0 {
		r.Comma = o.csvSep
	}
	recs, err := r.ReadAll()
	if err != nil {
		return ir.Node{}, fmt.Errorf("%w: csv: %w", ErrParse, err)
	}
	root, err := ir.New("csv", ir.ObjectType, ir.End)
	if err != nil {
		return ir.Node{}, err
	}
	for _, rec := range recs {
		line, err := root.Add(".", "", ir.ObjectType, ir.End)
		if err != nil {
			return ir.Node{}, err
		}
		for _, cell := range rec {
			if cell == "" {
				_, err = line.Add(".", "", ir.NullType)
			} else {
				t, v := typedValue(cell)
				_, err = line.Add(".", "", t, v)
			}
			if err != nil {
				return ir.Node{}, err
			}
		}
	}
	var header []string
	if o.csvFlags&format.FirstLineAsNames != 0 && len(recs) > 0 {
		if err := root.Delete("[0]"); err != nil {
			return ir.Node{}, err
		}
		header, recs = recs[0], recs[1:]
	}
	if o.csvFlags&format.FirstColumnAsNames != 0 {
		if len(header) > 0 {
			header = header[1:]
		}
		i := 0
		for line := range root.Children() {
			if rec := recs[i]; len(rec) > 0 {
				if err := line.Delete("[0]"); err != nil {
					return ir.Node{}, err
				}
				if err := line.Rename(".", rec[0]); err != nil {
					return ir.Node{}, fmt.Errorf("%w: csv line %d: %w", ErrParse, i+1, err)
				}
			}
			i++
		}
	}
	if header == nil {
		return root, nil
	}
	for line := range root.Children() {
		j := 0
		for cell := range line.Children() {
			if j == len(header) {
				break
			}
			if err := cell.Rename(".", header[j]); err != nil {
				return ir.Node{}, fmt.Errorf("%w: csv header: %w", ErrParse, err)
			}
			j++
		}
	}
	return root, nil
}
