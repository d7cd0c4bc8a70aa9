package tabular

import (
	"encoding/csv"
	"io"
)

// WriteCSV streams the view's full filtered and sorted set (all pages) as
// CSV, one header row of column keys followed by one record per row.
func (v *View[T]) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(v.columns))
	for _, col := range v.columns {
		header = append(header, col.Key)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range v.visible() {
		record := make([]string, 0, len(v.columns))
		for _, col := range v.columns {
			cell := ""
			if col.Value != nil {
				cell = col.Value(row)
			}
			record = append(record, cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
