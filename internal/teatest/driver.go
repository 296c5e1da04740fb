// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and the returned commands are run inline, so
// a test sees the model after all follow-up messages have been applied.
// Commands that block (spinner ticks, cursor blinks) are abandoned after a
// short wait.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDepth bounds how many chained commands one Send may run.
const MaxDepth = 100

// CmdTimeout is how long a command may run before it is abandoned. Work
// done by the model under test returns in microseconds; timer-based
// commands wait tens of milliseconds or more.
var CmdTimeout = 10 * time.Millisecond

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been produced.
	Quitting bool

	// Seen records every message fed to Update after the initial ones.
	Seen []tea.Msg
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New creates a Driver for model and runs its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	d.run(d.Model.Init(), 0)
	return d
}

// Send feeds msg through Update and runs the resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.Seen = append(d.Seen, msg)
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Submit types line and presses Enter.
func (d *Driver) Submit(line string) {
	d.T.Helper()
	d.Type(line)
	d.PressEnter()
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressCtrl sends ctrl plus a letter, e.g. PressCtrl('b').
func (d *Driver) PressCtrl(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(r-'a')})
}

// View returns the rendered model.
func (d *Driver) View() string {
	return d.Model.View()
}

// Plain returns the rendered model without ANSI escape sequences.
func (d *Driver) Plain() string {
	return ansiPattern.ReplaceAllString(d.Model.View(), "")
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	if cmd == nil {
		return
	}
	if depth >= MaxDepth {
		d.T.Logf("teatest: command depth limit (%d) reached", MaxDepth)
		return
	}

	msg, ok := runWithTimeout(cmd)
	if !ok || msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		d.Seen = append(d.Seen, msg)
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.run(next, depth+1)
	}
}

func runWithTimeout(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(CmdTimeout):
		return nil, false
	}
}

// isBlink detects the unexported cursor blink messages of bubbles, which
// chain into timer commands.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
