// Package strategies manages the sales strategies shown in the dashboard and
// compiles the active ones into the strategy system prompt.
package strategies

import (
	"slices"
	"time"
)

// Color tags a strategy card in the dashboard.
type Color string

// Known strategy colors.
const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
	ColorCyan   Color = "cyan"
	ColorRed    Color = "red"
)

var colors = []Color{
	ColorGreen,
	ColorBlue,
	ColorPurple,
	ColorOrange,
	ColorPink,
	ColorCyan,
	ColorRed,
}

// Valid reports whether c is a known color.
func (c Color) Valid() bool {
	return slices.Contains(colors, c)
}

// Example is one customer line and the agent's reply.
type Example struct {
	Cliente string `json:"cliente"`
	Agente  string `json:"agente"`
}

// Strategy is one sales heuristic.
type Strategy struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Icon        string  `json:"icon"`
	Color       Color   `json:"color"`
	Description string  `json:"description"`
	Example     Example `json:"example"`
	IsActive    bool    `json:"isActive"`
}

// Snapshot is the current strategy list. UpdatedAt is nil until the first save.
type Snapshot struct {
	Strategies []Strategy `json:"strategies"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

// Active returns the active strategies in list order.
func Active(list []Strategy) []Strategy {
	out := make([]Strategy, 0, len(list))
	for _, s := range list {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}
