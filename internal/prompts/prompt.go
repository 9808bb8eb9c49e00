// Package prompts holds the sales agent's system prompt: the seven free-form
// sections edited in the playground, the structured agent configuration, the
// compilers that turn either into prompt text, and the store that keeps the
// current value of each.
package prompts

import "time"

// Sections are the free-form blocks of the playground prompt.
type Sections struct {
	Identity     string `json:"identity"`
	Tone         string `json:"tone"`
	Constraints  string `json:"constraints"`
	Knowledge    string `json:"knowledge"`
	Logic        string `json:"logic"`
	FewShot      string `json:"fewShot"`
	LeadBehavior string `json:"leadBehavior"`
}

// SectionNames lists the section keys in compile order.
var SectionNames = []string{
	"identity",
	"tone",
	"constraints",
	"knowledge",
	"logic",
	"fewShot",
	"leadBehavior",
}

// Tool describes one capability the agent may call.
type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	WhenToUse   []string `json:"whenToUse"`
}

// Template is a canned reply the agent copies verbatim.
type Template struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AgentConfig is the structured variant of the prompt.
type AgentConfig struct {
	BusinessName           string     `json:"businessName"`
	BusinessDescription    string     `json:"businessDescription"`
	Channel                string     `json:"channel"`
	Mission                []string   `json:"mission"`
	Style                  string     `json:"style"`
	AnchorPhrases          []string   `json:"anchorPhrases"`
	MaxCharsPerMessage     int        `json:"maxCharsPerMessage"`
	MaxQuestionsPerMessage int        `json:"maxQuestionsPerMessage"`
	Tools                  []Tool     `json:"tools"`
	Templates              []Template `json:"templates"`
	Prohibitions           []string   `json:"prohibitions"`
	FixedKnowledge         []string   `json:"fixedKnowledge"`
}

// Snapshot is the current sections value. UpdatedAt is nil until the first save.
type Snapshot struct {
	Sections  Sections   `json:"sections"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// AgentSnapshot is the current agent configuration. UpdatedAt is nil until the
// first save.
type AgentSnapshot struct {
	Config    AgentConfig `json:"config"`
	UpdatedAt *time.Time  `json:"updatedAt"`
}

// Metadata describes the compiled prompt for downstream consumers.
type Metadata struct {
	Business    string `json:"business"`
	Channel     string `json:"channel"`
	Version     string `json:"version"`
	GeneratedBy string `json:"generatedBy"`
}

// DefaultMetadata is attached to full-format prompt responses.
var DefaultMetadata = Metadata{
	Business:    "La Tinta Fine Art Print",
	Channel:     "Instagram/ManyChat",
	Version:     "1.0",
	GeneratedBy: "Agent Playground",
}
