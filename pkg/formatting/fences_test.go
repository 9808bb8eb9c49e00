package formatting_test

import (
	"testing"

	"github.com/latinta/dashboard/pkg/formatting"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text trimmed",
			input: "\n  Texto mejorado.  \n",
			want:  "Texto mejorado.",
		},
		{
			name:  "fenced block removed",
			input: "Hola!\n```markdown\nignorado\n```\nChao",
			want:  "Hola!\n\nChao",
		},
		{
			name:  "multiple blocks removed",
			input: "```a```uno```b```",
			want:  "uno",
		},
		{
			name:  "only a fence",
			input: "```\ntodo\n```",
			want:  "",
		},
		{
			name:  "unterminated fence kept",
			input: "```abierto",
			want:  "```abierto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.StripCodeFences(tt.input); got != tt.want {
				t.Errorf("StripCodeFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
