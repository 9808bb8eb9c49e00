package prices

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Amount is a price in Chilean pesos. CLP has no minor unit, so the integer
// is the whole amount.
type Amount int64

var grouped = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseAmount accepts plain integers ("24990"), es-CL grouped values
// ("24.990", "$24.990") and integral decimals ("24990.0").
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return 0, fmt.Errorf("%w: price_clp vacio", ErrInvalidRecord)
	}
	if grouped.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 0 || f > 1e15 {
		return 0, fmt.Errorf("%w: price_clp %q no es un monto valido", ErrInvalidRecord, s)
	}
	return Amount(f), nil
}

// Display formats the amount with es-CL thousands grouping: 24990 -> "24.990".
func (a Amount) Display() string {
	return humanize.FormatInteger("#.###,", int(a))
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// UnmarshalJSON accepts either a JSON number or a string holding one.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Record is one sellable paper and size combination.
// Columns beyond the known set are carried in Extra and survive every
// read/modify/write cycle.
type Record struct {
	PaperID      string
	PaperName    string
	Line         string
	Finish       string
	Grams        string
	MeasureLabel string
	PriceCLP     Amount
	PriceDisplay string
	Extra        map[string]string
}

// Key identifies a record by paper and measure.
type Key struct {
	PaperID      string `json:"paper_id"`
	MeasureLabel string `json:"measure_label"`
}

// Trim strips surrounding whitespace from both parts, the same way Create
// stores them.
func (k Key) Trim() Key {
	return Key{PaperID: strings.TrimSpace(k.PaperID), MeasureLabel: strings.TrimSpace(k.MeasureLabel)}
}

// Key returns the record's composite key.
func (r Record) Key() Key {
	return Key{PaperID: r.PaperID, MeasureLabel: r.MeasureLabel}
}

// Matches reports whether the record carries the composite key k.
func (r Record) Matches(k Key) bool {
	return r.PaperID == k.PaperID && r.MeasureLabel == k.MeasureLabel
}

// MarshalJSON flattens Extra into the record object.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(knownColumns)+len(r.Extra))
	for k, v := range r.Extra {
		out[k] = v
	}
	out[colPaperID] = r.PaperID
	out[colPaperName] = r.PaperName
	out[colLine] = r.Line
	out[colFinish] = r.Finish
	out[colGrams] = r.Grams
	out[colMeasureLabel] = r.MeasureLabel
	out[colPriceCLP] = int64(r.PriceCLP)
	out[colPriceDisplay] = r.PriceDisplay
	return json.Marshal(out)
}

// UnmarshalJSON reads the known fields and keeps every other key in Extra.
// Non-string values for text fields are kept in their JSON literal form.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var rec Record
	for k, v := range raw {
		if k == colPriceCLP {
			if err := rec.PriceCLP.UnmarshalJSON(v); err != nil {
				return err
			}
			continue
		}
		rec.set(k, text(v))
	}

	*r = rec
	return nil
}

func (r *Record) set(col, value string) {
	switch col {
	case colPaperID:
		r.PaperID = value
	case colPaperName:
		r.PaperName = value
	case colLine:
		r.Line = value
	case colFinish:
		r.Finish = value
	case colGrams:
		r.Grams = value
	case colMeasureLabel:
		r.MeasureLabel = value
	case colPriceDisplay:
		r.PriceDisplay = value
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[col] = value
	}
}

func (r Record) clone() Record {
	r.Extra = maps.Clone(r.Extra)
	return r
}

// normalize trims the key fields, validates them and derives PriceDisplay.
func (r *Record) normalize() error {
	r.PaperID = strings.TrimSpace(r.PaperID)
	r.MeasureLabel = strings.TrimSpace(r.MeasureLabel)

	if r.PaperID == "" {
		return fmt.Errorf("%w: falta paper_id", ErrInvalidRecord)
	}
	if r.MeasureLabel == "" {
		return fmt.Errorf("%w: falta measure_label", ErrInvalidRecord)
	}
	if r.PriceCLP <= 0 {
		return fmt.Errorf("%w: price_clp debe ser mayor que cero", ErrInvalidRecord)
	}

	r.PriceDisplay = r.PriceCLP.Display()
	return nil
}

func text(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	if string(v) == "null" {
		return ""
	}
	return string(v)
}

// UpdateCommand sets a new price on the record matching the key.
type UpdateCommand struct {
	PaperID      string `json:"paper_id"`
	MeasureLabel string `json:"measure_label"`
	PriceCLP     Amount `json:"price_clp"`
}

// Key returns the trimmed composite key targeted by the command.
func (c UpdateCommand) Key() Key {
	return Key{PaperID: c.PaperID, MeasureLabel: c.MeasureLabel}.Trim()
}

// Stats summarizes the price list for the dashboard header.
type Stats struct {
	Total        int            `json:"total"`
	Papers       int            `json:"papers"`
	Lines        map[string]int `json:"lines"`
	AveragePrice Amount         `json:"average_price"`
	MaxPrice     Amount         `json:"max_price"`
	MinPrice     Amount         `json:"min_price"`
}

func computeStats(records []Record) Stats {
	s := Stats{Lines: make(map[string]int)}
	if len(records) == 0 {
		return s
	}

	papers := make(map[string]struct{})
	var sum int64
	s.MinPrice = records[0].PriceCLP
	for _, r := range records {
		papers[r.PaperID] = struct{}{}
		if r.Line != "" {
			s.Lines[r.Line]++
		}
		sum += int64(r.PriceCLP)
		s.MaxPrice = max(s.MaxPrice, r.PriceCLP)
		s.MinPrice = min(s.MinPrice, r.PriceCLP)
	}

	s.Total = len(records)
	s.Papers = len(papers)
	s.AveragePrice = Amount(math.Round(float64(sum) / float64(len(records))))
	return s
}
