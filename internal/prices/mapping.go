package prices

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/latinta/dashboard/pkg/tabular"
)

const (
	colPaperID      = "paper_id"
	colPaperName    = "paper_name"
	colLine         = "line"
	colFinish       = "finish"
	colGrams        = "grams"
	colMeasureLabel = "measure_label"
	colPriceCLP     = "price_clp"
	colPriceDisplay = "price_display"
)

var knownColumns = []string{
	colPaperID,
	colPaperName,
	colLine,
	colFinish,
	colGrams,
	colMeasureLabel,
	colPriceCLP,
	colPriceDisplay,
}

func recordFromRow(row tabular.Row) (Record, error) {
	var r Record
	for col, v := range row {
		if col == colPriceCLP {
			price, err := ParseAmount(v)
			if err != nil {
				return Record{}, err
			}
			r.PriceCLP = price
			continue
		}
		r.set(col, v)
	}
	return r, nil
}

func recordsFromTable(t *tabular.Table) ([]Record, error) {
	records := make([]Record, 0, t.Len())
	for i, row := range t.Rows {
		r, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", i+2, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (r Record) row() tabular.Row {
	row := make(tabular.Row, len(knownColumns)+len(r.Extra))
	for k, v := range r.Extra {
		row[k] = v
	}
	row[colPaperID] = r.PaperID
	row[colPaperName] = r.PaperName
	row[colLine] = r.Line
	row[colFinish] = r.Finish
	row[colGrams] = r.Grams
	row[colMeasureLabel] = r.MeasureLabel
	row[colPriceCLP] = r.PriceCLP.String()
	row[colPriceDisplay] = r.PriceDisplay
	return row
}

func tableFromRecords(columns []string, records []Record) *tabular.Table {
	t := tabular.New(columns...)
	for _, col := range knownColumns {
		t.AddColumn(col)
	}
	for _, r := range records {
		t.Append(r.row())
	}
	return t
}

// Filters narrows a price listing. Line is an exact match; Search is a
// case-insensitive contains match over paper name, paper id and finish.
type Filters struct {
	Line   string `json:"line,omitempty"`
	Search string `json:"search,omitempty"`
}

// Empty reports whether no filter is set.
func (f Filters) Empty() bool {
	return f.Line == "" && f.Search == ""
}

// Match reports whether r satisfies every set filter.
func (f Filters) Match(r Record) bool {
	if f.Line != "" && r.Line != f.Line {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(r.PaperName + "\n" + r.PaperID + "\n" + r.Finish)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		Line:   strings.TrimSpace(values.Get("line")),
		Search: strings.TrimSpace(values.Get("search")),
	}
}
