package intelligence

import "fmt"

const enrichPromptTemplate = "Por favor, forneça uma explicação detalhada sobre '%s'. O contexto é: %s"

// buildEnrichPrompt embeds a leaf's label and canned answer into the
// generation prompt.
func buildEnrichPrompt(label, answer string) string {
	return fmt.Sprintf(enrichPromptTemplate, label, answer)
}
