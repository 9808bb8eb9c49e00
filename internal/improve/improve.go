// Package improve rewrites prompt sections through a generative model. When no
// model is configured it falls back to a deterministic offline rewrite.
package improve

// Mode reports how a result was produced.
type Mode string

const (
	ModeLive      Mode = "live"
	ModeSimulated Mode = "simulated"
)

// Command is one rewrite request.
type Command struct {
	CurrentText string `json:"currentText"`
	Instruction string `json:"instruction"`
	SectionType string `json:"sectionType"`
}

// Result is the rewritten text.
type Result struct {
	ImprovedText string `json:"improvedText"`
	Mode         Mode   `json:"mode"`
}
