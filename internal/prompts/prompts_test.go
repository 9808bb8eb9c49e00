package prompts_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/latinta/dashboard/internal/prompts"
	"github.com/latinta/dashboard/pkg/docstore"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompile(t *testing.T) {
	s := prompts.Sections{
		Identity:     "ID",
		Tone:         "TONE",
		Constraints:  "RULES",
		Knowledge:    "KNOW",
		Logic:        "FLOW",
		FewShot:      "EXAMPLES",
		LeadBehavior: "LEADS",
	}

	want := "# SYSTEM PROMPT - AGENTE LA TINTA FINE ART PRINT\n\n" +
		"## IDENTIDAD Y ROL\nID\n\n" +
		"## TONALIDAD\nTONE\n\n" +
		"## REGLAS DE ORO (CONSTRAINTS)\nRULES\n\n" +
		"## CONOCIMIENTO FIJO\nKNOW\n\n" +
		"## CADENA DE RAZONAMIENTO (Chain of Thought)\nFLOW\n\n" +
		"## EJEMPLOS DE CONVERSACION (Few-Shot)\nEXAMPLES\n\n" +
		"## COMPORTAMIENTO CON LEADS\nLEADS\n\n" +
		"---\nGenerado con Agent Playground - La Tinta Dashboard"

	if got := prompts.Compile(s); got != want {
		t.Errorf("Compile() =\n%s\nwant\n%s", got, want)
	}
}

func TestCompileDeterministic(t *testing.T) {
	s := prompts.DefaultSections()
	if prompts.Compile(s) != prompts.Compile(s) {
		t.Error("Compile is not deterministic")
	}

	c := prompts.DefaultAgentConfig()
	if prompts.CompileAgent(c) != prompts.CompileAgent(c) {
		t.Error("CompileAgent is not deterministic")
	}
}

func TestCompileAgent(t *testing.T) {
	got := prompts.CompileAgent(prompts.DefaultAgentConfig())

	wantPrefix := "# SYSTEM PROMPT — **LA TINTA** (La Tinta Fine Art Print (Santiago, Chile))\n\n## 0) Directiva principal\n\n"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("prefix = %q", got[:len(wantPrefix)])
	}
	if !strings.HasSuffix(got, "proximo_paso=...\n\n---\nGenerado con Agent Playground - La Tinta Dashboard") {
		t.Errorf("unexpected suffix: %q", got[len(got)-80:])
	}

	for _, want := range []string{
		"**Mision (en orden):**\n1. Resolver dudas + FAQs (tecnicas y comerciales)\n2. ",
		"**Frases ancla:** \"Excelente\" / \"Buenisimo\".\n",
		"* **Max 800 caracteres** por mensaje.\n",
		"* **Max 1 pregunta por mensaje.**\n",
		"### A) `Documento LA TINTA`\n\n**Que es:** ",
		"### B) `PRODUCTOS`",
		"### D) `SOPORTE`",
		"\n---\n\n### B)",
		"### Copyright\n\"Por derechos de autor",
		"## 6) Prohibido\n\n* No textos largos\n",
		"* ¿Use max 800 caracteres?\n* ¿Solo 1 pregunta?\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("compiled agent prompt missing %q", want)
		}
	}
}

func TestCompileAgentLettersFollowOrder(t *testing.T) {
	c := prompts.DefaultAgentConfig()
	c.Tools = []prompts.Tool{
		{Name: "uno", WhenToUse: []string{"a"}},
		{Name: "dos", WhenToUse: []string{"b"}},
		{Name: "tres", WhenToUse: []string{"c"}},
	}

	got := prompts.CompileAgent(c)
	a := strings.Index(got, "### A) `uno`")
	b := strings.Index(got, "### B) `dos`")
	cc := strings.Index(got, "### C) `tres`")
	if a < 0 || b < a || cc < b {
		t.Errorf("tool letters out of order: %d %d %d", a, b, cc)
	}
}

func TestDefaultAgentConfigIsCopy(t *testing.T) {
	c := prompts.DefaultAgentConfig()
	c.Mission[0] = "cambiado"
	c.Tools[0].WhenToUse[0] = "cambiado"

	fresh := prompts.DefaultAgentConfig()
	if fresh.Mission[0] == "cambiado" || fresh.Tools[0].WhenToUse[0] == "cambiado" {
		t.Error("DefaultAgentConfig shares backing arrays")
	}
}

func TestParseSections(t *testing.T) {
	full := `{"identity":"a","tone":"b","constraints":"c","knowledge":"d","logic":"e","fewShot":"f","leadBehavior":""}`

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"all present", full, ""},
		{"missing", `{"identity":"a"}`, "seccion 'tone' invalida o faltante"},
		{"not a string", strings.Replace(full, `"logic":"e"`, `"logic":5`, 1), "seccion 'logic' invalida o faltante"},
		{"null section", strings.Replace(full, `"fewShot":"f"`, `"fewShot":null`, 1), "seccion 'fewShot' invalida o faltante"},
		{"absent", ``, "secciones requeridas"},
		{"not an object", `[]`, "secciones invalidas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := prompts.ParseSections(json.RawMessage(tt.raw))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if s.FewShot != "f" || s.LeadBehavior != "" {
					t.Errorf("sections = %+v", s)
				}
				return
			}
			if !errors.Is(err, prompts.ErrInvalidSections) {
				t.Fatalf("err = %v, want ErrInvalidSections", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestStoreDefaults(t *testing.T) {
	sys := prompts.New(docstore.NewMemory(discard()), discard())
	ctx := context.Background()

	snap, err := sys.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.UpdatedAt != nil {
		t.Errorf("updatedAt = %v, want nil", snap.UpdatedAt)
	}
	if snap.Sections != prompts.DefaultSections() {
		t.Error("empty store should serve the default sections")
	}

	agent, err := sys.GetAgent(ctx)
	if err != nil {
		t.Fatalf("GetAgent: %v", err)
	}
	if agent.UpdatedAt != nil || agent.Config.BusinessName != "LA TINTA" {
		t.Errorf("agent snapshot = %+v", agent)
	}
	if sys.Source() != docstore.SourceMemory {
		t.Errorf("source = %s", sys.Source())
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	sys := prompts.New(docstore.NewMemory(discard()), discard())
	ctx := context.Background()

	first := prompts.DefaultSections()
	first.Tone = "formal"
	if _, err := sys.Set(ctx, first); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := prompts.DefaultSections()
	second.Tone = "cercano"
	at, err := sys.Set(ctx, second)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}

	snap, err := sys.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snap.Sections.Tone != "cercano" {
		t.Errorf("tone = %q, want cercano", snap.Sections.Tone)
	}
	if snap.UpdatedAt == nil || !snap.UpdatedAt.Equal(at) {
		t.Errorf("updatedAt = %v, want %v", snap.UpdatedAt, at)
	}
}

func TestStoreSetAgent(t *testing.T) {
	sys := prompts.New(docstore.NewMemory(discard()), discard())
	ctx := context.Background()

	cfg := prompts.DefaultAgentConfig()
	cfg.MaxCharsPerMessage = 500
	if _, err := sys.SetAgent(ctx, cfg); err != nil {
		t.Fatalf("SetAgent: %v", err)
	}

	snap, err := sys.GetAgent(ctx)
	if err != nil {
		t.Fatalf("GetAgent: %v", err)
	}
	if snap.Config.MaxCharsPerMessage != 500 {
		t.Errorf("max chars = %d, want 500", snap.Config.MaxCharsPerMessage)
	}
	if !strings.Contains(prompts.CompileAgent(snap.Config), "**Max 500 caracteres**") {
		t.Error("compiled prompt does not reflect saved config")
	}
}

func TestValidateAgentConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*prompts.AgentConfig)
	}{
		{"blank business", func(c *prompts.AgentConfig) { c.BusinessName = " " }},
		{"zero chars", func(c *prompts.AgentConfig) { c.MaxCharsPerMessage = 0 }},
		{"zero questions", func(c *prompts.AgentConfig) { c.MaxQuestionsPerMessage = 0 }},
		{"unnamed tool", func(c *prompts.AgentConfig) { c.Tools[1].Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := prompts.DefaultAgentConfig()
			tt.mutate(&cfg)
			if err := prompts.ValidateAgentConfig(cfg); !errors.Is(err, prompts.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if err := prompts.ValidateAgentConfig(prompts.DefaultAgentConfig()); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}
