package improve_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/latinta/dashboard/internal/improve"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeGenerator struct {
	out    string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name string
		cmd  improve.Command
		want string
	}{
		{
			name: "formal",
			cmd:  improve.Command{CurrentText: "Hola! te cuento que tenes lo que queres. Buenisimo", Instruction: "Hazlo mas PROFESIONAL"},
			want: "Estimado cliente, le informamos que tiene lo que desea. Excelente",
		},
		{
			name: "friendly",
			cmd:  improve.Command{CurrentText: "Estimado cliente, le informamos que tiene stock", Instruction: "mas cercano"},
			want: "Hola! cliente, te cuento que tienes stock\n\n*Tip: Usa emojis con moderación para crear cercanía*",
		},
		{
			name: "persuasive",
			cmd:  improve.Command{CurrentText: "Texto", Instruction: "orientado a ventas"},
			want: "Texto\n\nRecuerda: cada interacción es una oportunidad de venta. Usa urgencia y beneficios claros.",
		},
		{
			name: "default",
			cmd:  improve.Command{CurrentText: "Texto", Instruction: "agrega emojis"},
			want: "Texto\n\n[Mejorado segun: \"agrega emojis\"]",
		},
		{
			name: "formal wins over short",
			cmd:  improve.Command{CurrentText: "Hola!", Instruction: "formal y corto"},
			want: "Estimado cliente,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := improve.Simulate(tt.cmd); got != tt.want {
				t.Errorf("Simulate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimulateShorten(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"ten lines keep seven", "1\n2\n3\n4\n5\n6\n7\n8\n9\n10", "1\n2\n3\n4\n5\n6\n7"},
		{"blank lines dropped", "a\n\nb\n   \nc\nd", "a\nb\nc"},
		{"fewer than three kept", "a\nb", "a\nb"},
		{"four lines keep three", "a\nb\nc\nd", "a\nb\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := improve.Simulate(improve.Command{CurrentText: tt.text, Instruction: "mas conciso"})
			if got != tt.want {
				t.Errorf("Simulate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	got := improve.BuildPrompt(improve.Command{CurrentText: "ACTUAL", Instruction: "INSTR", SectionType: "tone"})

	for _, want := range []string{
		"SECCION A MEJORAR: tone\n",
		"TEXTO ACTUAL:\nACTUAL\n",
		"INSTRUCCION DEL USUARIO:\nINSTR\n",
		"- Negocio: La Tinta Fine Art Print",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if !strings.HasSuffix(got, "TEXTO MEJORADO:") {
		t.Error("prompt should end with the answer marker")
	}
}

func TestImproveSimulated(t *testing.T) {
	sys := improve.New(nil, 0, discard())
	if sys.Mode() != improve.ModeSimulated {
		t.Fatalf("mode = %s", sys.Mode())
	}

	res, err := sys.Improve(context.Background(), improve.Command{CurrentText: "Texto", Instruction: "ventas"})
	if err != nil {
		t.Fatalf("improve failed: %v", err)
	}
	if res.Mode != improve.ModeSimulated || !strings.HasPrefix(res.ImprovedText, "Texto\n\nRecuerda") {
		t.Errorf("result = %+v", res)
	}
}

func TestImproveMissingParams(t *testing.T) {
	sys := improve.New(nil, 0, discard())

	for _, cmd := range []improve.Command{
		{Instruction: "x"},
		{CurrentText: "x"},
		{CurrentText: "  ", Instruction: "x"},
	} {
		if _, err := sys.Improve(context.Background(), cmd); !errors.Is(err, improve.ErrMissingParams) {
			t.Errorf("Improve(%+v) err = %v, want ErrMissingParams", cmd, err)
		}
	}
}

func TestImproveLive(t *testing.T) {
	gen := &fakeGenerator{out: "```markdown\nnotas\n```\n  Texto mejorado  \n"}
	sys := improve.New(gen, time.Second, discard())

	cmd := improve.Command{CurrentText: "Texto", Instruction: "mejora", SectionType: "identity"}
	res, err := sys.Improve(context.Background(), cmd)
	if err != nil {
		t.Fatalf("improve failed: %v", err)
	}

	if res.Mode != improve.ModeLive {
		t.Errorf("mode = %s, want live", res.Mode)
	}
	if res.ImprovedText != "Texto mejorado" {
		t.Errorf("text = %q", res.ImprovedText)
	}
	if gen.prompt != improve.BuildPrompt(cmd) {
		t.Error("generator did not receive the built prompt")
	}
}

func TestImproveLiveFailures(t *testing.T) {
	tests := []struct {
		name    string
		gen     *fakeGenerator
		wantErr error
	}{
		{"upstream error", &fakeGenerator{err: errors.New("quota")}, improve.ErrUpstream},
		{"empty completion", &fakeGenerator{out: "   "}, improve.ErrEmpty},
		{"only fenced content", &fakeGenerator{out: "```x```"}, improve.ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := improve.New(tt.gen, 0, discard())
			_, err := sys.Improve(context.Background(), improve.Command{CurrentText: "a", Instruction: "b"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
