package formatter

import (
	"fmt"
	"strings"
)

// responseWidth is the wrap width for session responses.
const responseWidth = 80

// Banner is printed once when an interactive session starts.
func Banner() string {
	return "\n" + StylePurple.Render("faqbot") + " " +
		Dim("· perguntas frequentes sobre Python") + "\n" +
		Dim("Escolha pelo número, pelo nome da opção ou descreva o que procura.") + "\n"
}

// FormatMenu renders the current menu: an optional breadcrumb trail, the
// numbered options and the reserved navigation words.
func FormatMenu(trail, options []string) string {
	var b strings.Builder
	b.WriteString("\n" + Rule() + "\n")
	if len(trail) > 0 {
		b.WriteString(Dim(strings.Join(trail, " › ")) + "\n")
	}
	b.WriteString(Bold("Escolha uma das opções:") + "\n")
	for i, opt := range options {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), opt)
	}
	b.WriteString(Dim(`Digite "voltar" para retornar ou "sair" para encerrar.`) + "\n")
	b.WriteString(Rule() + "\n")
	return b.String()
}

// FormatResponse frames a session response between separators.
func FormatResponse(text string, tone Tone) string {
	return "\n" + Rule() + "\n" +
		ToneStyle(tone).Render(wrapText(text, responseWidth)) + "\n" +
		Rule() + "\n"
}
