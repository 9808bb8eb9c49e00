package improve

import "fmt"

const promptTemplate = `Eres un experto en diseño de System Prompts para agentes de IA de ventas.

CONTEXTO:
- Negocio: La Tinta Fine Art Print (impresión fine art en Santiago, Chile)
- Canal: Instagram/WhatsApp via ManyChat
- Objetivo del agente: Convertir leads en clientes

SECCION A MEJORAR: %s

TEXTO ACTUAL:
%s

INSTRUCCION DEL USUARIO:
%s

REGLAS:
1. Mantén el formato y estructura similar al original
2. Usa español chileno neutro y profesional
3. Sé conciso pero efectivo
4. No agregues información que no esté en el contexto
5. Si es una sección de constraints, mantén formato de lista
6. Responde SOLO con el texto mejorado, sin explicaciones

TEXTO MEJORADO:`

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(cmd Command) string {
	return fmt.Sprintf(promptTemplate, cmd.SectionType, cmd.CurrentText, cmd.Instruction)
}
