package cli

import "strings"

const maxHistoryLines = 100

// inputHistory keeps the lines submitted in one TUI session for recall with
// the arrow keys. It is never written to disk.
type inputHistory struct {
	lines  []string
	cursor int // len(lines) when not browsing
}

// add records line, skipping blanks and immediate repeats, and stops browsing.
func (h *inputHistory) add(line string) {
	line = strings.TrimSpace(line)
	if line != "" && (len(h.lines) == 0 || h.lines[len(h.lines)-1] != line) {
		h.lines = append(h.lines, line)
		if len(h.lines) > maxHistoryLines {
			h.lines = h.lines[len(h.lines)-maxHistoryLines:]
		}
	}
	h.cursor = len(h.lines)
}

// prev moves to the previous entry. ok is false when there is none.
func (h *inputHistory) prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.lines[h.cursor], true
}

// next moves toward the newest entry; past it the line is blank.
func (h *inputHistory) next() (string, bool) {
	if h.cursor >= len(h.lines) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.lines) {
		return "", true
	}
	return h.lines[h.cursor], true
}
