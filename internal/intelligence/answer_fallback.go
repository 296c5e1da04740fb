package intelligence

import "fmt"

// Session messages shown for non-answer resolutions.
const (
	MsgBack          = "Voltando ao menu anterior..."
	MsgAlreadyAtRoot = "Você já está no menu inicial."
	MsgInvalid       = "Opção inválida. Por favor, escolha uma opção válida."
	MsgExit          = "Encerrando o chatbot..."
)

const (
	detailsHeader   = "Aqui você confere mais detalhes sobre a opção escolhida:"
	detailsEmpty    = "Não foi possível gerar uma resposta adequada."
	detailsDisabled = "Detalhes adicionais indisponíveis (geração desativada)."
)

func descendMessage(label string) string {
	return fmt.Sprintf("Você escolheu %s. O que mais você gostaria de saber?", label)
}

func generationErrorDetails(err error) string {
	return fmt.Sprintf("Erro ao consultar o LLM: %v", err)
}

// formatAnswer appends the details section to a canned answer.
func formatAnswer(answer, details string) string {
	return answer + "\n\n" + detailsHeader + "\n\n" + details
}
