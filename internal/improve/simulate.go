package improve

import (
	"fmt"
	"math"
	"strings"
)

const (
	salesNote    = "\n\nRecuerda: cada interacción es una oportunidad de venta. Usa urgencia y beneficios claros."
	friendlyNote = "\n\n*Tip: Usa emojis con moderación para crear cercanía*"
)

var (
	formal = strings.NewReplacer(
		"Hola!", "Estimado cliente,",
		"Buenisimo", "Excelente",
		"te cuento", "le informamos",
		"tenes", "tiene",
		"queres", "desea",
	)
	friendly = strings.NewReplacer(
		"Estimado", "Hola!",
		"le informamos", "te cuento",
		"tiene", "tienes",
	)
)

// Simulate applies the offline rewrite keyed on words in the instruction.
// The first matching rule wins.
func Simulate(cmd Command) string {
	in := strings.ToLower(cmd.Instruction)

	switch {
	case containsAny(in, "profesional", "formal"):
		return formal.Replace(cmd.CurrentText)
	case containsAny(in, "conciso", "corto"):
		return shorten(cmd.CurrentText)
	case containsAny(in, "persuasivo", "ventas"):
		return cmd.CurrentText + salesNote
	case containsAny(in, "amigable", "cercano"):
		return friendly.Replace(cmd.CurrentText) + friendlyNote
	default:
		return fmt.Sprintf("%s\n\n[Mejorado segun: \"%s\"]", cmd.CurrentText, cmd.Instruction)
	}
}

// shorten keeps the first 70% of the non-blank lines, never fewer than three.
func shorten(text string) string {
	var lines []string
	for l := range strings.SplitSeq(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	keep := max(3, int(math.Ceil(float64(len(lines))*0.7)))
	keep = min(keep, len(lines))
	return strings.Join(lines[:keep], "\n")
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
