package prompts

import (
	"fmt"
	"strings"
)

const footer = "---\nGenerado con Agent Playground - La Tinta Dashboard"

// Compile renders the playground sections into the system prompt text.
func Compile(s Sections) string {
	var b strings.Builder
	b.WriteString("# SYSTEM PROMPT - AGENTE LA TINTA FINE ART PRINT\n\n")
	section(&b, "IDENTIDAD Y ROL", s.Identity)
	section(&b, "TONALIDAD", s.Tone)
	section(&b, "REGLAS DE ORO (CONSTRAINTS)", s.Constraints)
	section(&b, "CONOCIMIENTO FIJO", s.Knowledge)
	section(&b, "CADENA DE RAZONAMIENTO (Chain of Thought)", s.Logic)
	section(&b, "EJEMPLOS DE CONVERSACION (Few-Shot)", s.FewShot)
	section(&b, "COMPORTAMIENTO CON LEADS", s.LeadBehavior)
	b.WriteString(footer)
	return b.String()
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "## %s\n%s\n\n", title, body)
}

// CompileAgent renders the structured agent configuration into the system
// prompt text. Tools are lettered A, B, C in list order.
func CompileAgent(c AgentConfig) string {
	anchors := quoted(c.AnchorPhrases, " / ")
	var b strings.Builder

	fmt.Fprintf(&b, "# SYSTEM PROMPT — **%s** (%s)\n\n", c.BusinessName, c.BusinessDescription)

	b.WriteString("## 0) Directiva principal\n\n")
	fmt.Fprintf(&b, "Eres **%s**, asistente virtual de **%s**. Atiendes por **%s**.\n\n", c.BusinessName, c.BusinessDescription, c.Channel)
	b.WriteString("**Mision (en orden):**\n")
	b.WriteString(numbered(c.Mission))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Estilo:** %s.\n", c.Style)
	fmt.Fprintf(&b, "**Frases ancla:** %s.\n", anchors)
	b.WriteString("**Emojis:** 0-2 por mensaje.\n\n---\n\n")

	b.WriteString("## 1) Reglas de oro (innegociables)\n\n")
	fmt.Fprintf(&b, "* **Max %d caracteres** por mensaje.\n", c.MaxCharsPerMessage)
	fmt.Fprintf(&b, "* **Max %d pregunta por mensaje.**\n", c.MaxQuestionsPerMessage)
	b.WriteString(`* **Sin menu:** recomienda 1-2 opciones, no 7.
* **NO inventar**: precios, promos, disponibilidad, plazos especiales, excepciones.
* **Archivos:** NO recibir por IG/WhatsApp. Pedir WeTransfer/Drive/Dropbox a latinta.fineart@gmail.com.
* **Copyright:** NO imprimir obras ajenas. Pedir confirmacion de derechos si hay duda.
* **Precios:** solo si vienen de herramienta PRODUCTOS (o tabla/asset devuelto).

`)
	fmt.Fprintf(&b, "Frases ancla: %s.\n\n---\n\n", anchors)

	b.WriteString("## 2) Conocimiento fijo (respuesta sin herramientas, salvo duda)\n\n")
	b.WriteString(bulleted(c.FixedKnowledge))
	b.WriteString("\n\n> Si la pregunta exige precision (politica, detalle tecnico, redaccion exacta), usa **DOCUMENTO**.\n\n---\n\n")

	b.WriteString("## 3) Modelo operativo (decision rapida)\n\n")
	b.WriteString(defaultLogic)
	b.WriteString("\n\n---\n\n")

	b.WriteString("## 4) Herramientas disponibles (uso obligatorio cuando aplique)\n\n")
	tools := make([]string, len(c.Tools))
	for i, t := range c.Tools {
		tools[i] = fmt.Sprintf("### %c) `%s`\n\n**Que es:** %s\n\n**Cuando usar:**\n%s\n",
			rune('A'+i), t.Name, t.Description, bulleted(t.WhenToUse))
	}
	b.WriteString(strings.Join(tools, "\n---\n\n"))
	b.WriteString("\n\n---\n\n")

	b.WriteString("## 5) Plantillas obligatorias (copiar/pegar)\n\n")
	templates := make([]string, len(c.Templates))
	for i, t := range c.Templates {
		templates[i] = fmt.Sprintf("### %s\n\"%s\"\n", t.Title, t.Content)
	}
	b.WriteString(strings.Join(templates, "\n"))
	b.WriteString("\n\n---\n\n")

	b.WriteString("## 6) Prohibido\n\n")
	b.WriteString(bulleted(c.Prohibitions))
	b.WriteString("\n\n---\n\n")

	b.WriteString("## 7) Check final antes de responder\n\n")
	b.WriteString("**Checklist antes de responder:**\n")
	fmt.Fprintf(&b, "* ¿Use max %d caracteres?\n", c.MaxCharsPerMessage)
	fmt.Fprintf(&b, "* ¿Solo %d pregunta?\n", c.MaxQuestionsPerMessage)
	b.WriteString(`* ¿Si pide precio/cotizacion use PRODUCTOS?
* ¿Si hay duda/politica use DOCUMENTO?
* ¿Guarde lo relevante en MEMORIA?
* ¿Si hay conflicto: SOPORTE?

`)
	b.WriteString(memoryFields)
	b.WriteString("\n\n")
	b.WriteString(footer)
	return b.String()
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "* " + item
	}
	return strings.Join(lines, "\n")
}

func quoted(items []string, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = `"` + item + `"`
	}
	return strings.Join(parts, sep)
}
