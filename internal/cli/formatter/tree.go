package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Number int // 1-based option number within the parent; 0 hides it
	Level  int // 1 for root topics
	IsLast bool
	Detail string
	Body   string // wrapped below the line when set
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// MarkLast sets IsLast on every item that has no later sibling. Items must
// be in depth-first order.
func MarkLast(items []TreeItem) {
	for i := range items {
		items[i].IsLast = true
		for j := i + 1; j < len(items); j++ {
			if items[j].Level < items[i].Level {
				break
			}
			if items[j].Level == items[i].Level {
				items[i].IsLast = false
				break
			}
		}
	}
}

// RenderTree renders a list of TreeItems as an indented tree using
// box-drawing characters for connectors. Detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
		body    string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0
	// open[l] is true while the ancestor at level l still has siblings below.
	open := map[int]bool{}

	// Pass 1: build each line's content and track max visible width.
	for idx, item := range items {
		var prefix string
		for l := 1; l < item.Level; l++ {
			if open[l] {
				prefix += treePipe
			} else {
				prefix += treeBlank
			}
		}
		if item.IsLast {
			prefix += treeCorner
		} else {
			prefix += treeBranch
		}
		open[item.Level] = !item.IsLast

		title := item.Title
		if item.Number > 0 {
			title = StyleDim.Render(fmt.Sprintf("%d. ", item.Number)) + title
		}

		content := prefix + title
		lines[idx].content = content
		if item.Body != "" {
			lines[idx].body = Dim(indentWrapped(item.Body, item.Level*len(treeBlank)+2, 64))
		}
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
		if li.body != "" {
			b.WriteString(li.body + "\n")
		}
	}

	return b.String()
}
