package tabular

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of documents produced by EncodeXLSX.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EncodeXLSX writes the table to a single-sheet workbook named sheet.
// Cells in the numeric columns are stored as numbers when they hold a
// canonical integer that a spreadsheet represents exactly. Every other
// cell is stored as text, so keys survive a round trip unchanged.
func EncodeXLSX(t *Table, sheet string, numeric ...string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, row := range t.Rows {
		cells := make([]any, len(t.Columns))
		for j, v := range t.values(row) {
			if slices.Contains(numeric, t.Columns[j]) {
				cells[j] = numberOrText(v)
			} else {
				cells[j] = v
			}
		}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeXLSX parses the first sheet of a workbook. The first row is the header.
// Returns ErrEmpty when the sheet has no data rows.
func DecodeXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	t, err := fromRecords(rows)
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, ErrEmpty
	}
	return t, nil
}

func writeRow(f *excelize.File, sheet string, n int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	return nil
}

// maxExactDigits is the longest integer a spreadsheet keeps without
// switching to floating point display.
const maxExactDigits = 15

func numberOrText(v string) any {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != v || len(strings.TrimPrefix(v, "-")) > maxExactDigits {
		return v
	}
	return n
}
