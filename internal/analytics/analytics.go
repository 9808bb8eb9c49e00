// Package analytics serves the sales figures behind the dashboard charts.
// The data set is a fixed export for July to December 2025.
package analytics

// Trend marks the direction of a KPI.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

type KPI struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Subtext string `json:"subtext,omitempty"`
	Icon    string `json:"icon"`
	Trend   Trend  `json:"trend,omitempty"`
}

type Month struct {
	Month   string `json:"month"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type Product struct {
	Name    string `json:"name"`
	Revenue int64  `json:"revenue"`
	Qty     int    `json:"qty"`
	Orders  int    `json:"orders"`
}

type Category struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Units      int     `json:"units"`
}

type Weekday struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
}

type DiscountCode struct {
	Code   string `json:"code"`
	Uses   int    `json:"uses"`
	Amount int64  `json:"amount"`
}

// Dashboard is the complete chart data set.
type Dashboard struct {
	Period        string         `json:"period"`
	KPIs          []KPI          `json:"kpis"`
	MonthlyData   []Month        `json:"monthlyData"`
	TopProducts   []Product      `json:"topProducts"`
	Categories    []Category     `json:"categories"`
	WeekdayData   []Weekday      `json:"weekdayData"`
	DiscountCodes []DiscountCode `json:"discountCodes"`
}

// BestMonth returns the month with the highest revenue. ok is false when
// there is no monthly data.
func (d *Dashboard) BestMonth() (m Month, ok bool) {
	for i, cur := range d.MonthlyData {
		if i == 0 || cur.Revenue > m.Revenue {
			m = cur
		}
	}
	return m, len(d.MonthlyData) > 0
}

// Revenue sums revenue over every month.
func (d *Dashboard) Revenue() int64 {
	var total int64
	for _, m := range d.MonthlyData {
		total += m.Revenue
	}
	return total
}
