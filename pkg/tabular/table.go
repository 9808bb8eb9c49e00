// Package tabular provides an ordered, loosely-typed table model with CSV
// and spreadsheet codecs. Cell values are always strings; typing is left to
// the consumer.
package tabular

import "slices"

// Row maps column names to cell values.
type Row map[string]string

// Table is an ordered list of rows with an explicit column order.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: slices.Clone(columns)}
}

// AddColumn appends name to the column order if it is not already present.
func (t *Table) AddColumn(name string) {
	if name == "" || slices.Contains(t.Columns, name) {
		return
	}
	t.Columns = append(t.Columns, name)
}

// Append adds a row. Keys not yet present in the column order are appended
// in sorted order so the result stays deterministic.
func (t *Table) Append(row Row) {
	var missing []string
	for k := range row {
		if !slices.Contains(t.Columns, k) {
			missing = append(missing, k)
		}
	}
	slices.Sort(missing)
	for _, k := range missing {
		t.AddColumn(k)
	}
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) values(row Row) []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = row[col]
	}
	return out
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	t := &Table{}
	for _, col := range header {
		t.AddColumn(col)
	}
	if len(t.Columns) == 0 {
		return nil, ErrNoHeader
	}

	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}

func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
