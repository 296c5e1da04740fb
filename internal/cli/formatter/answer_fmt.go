package formatter

import "fmt"

// answerWidth leaves room for the box border and padding.
const answerWidth = 72

// FormatAnswer renders a composed answer in a titled box with its source.
func FormatAnswer(label, text, source string) string {
	body := wrapText(text, answerWidth)
	if source != "" {
		body += "\n\n" + Dim(fmt.Sprintf("[fonte: %s]", source))
	}
	return RenderBox(label, body)
}

// FormatError renders an inline error line.
func FormatError(msg string) string {
	return StyleRed.Render("✖ ") + msg
}
