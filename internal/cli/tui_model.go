package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/intelligence"
	"github.com/alexanderramin/faqbot/internal/navigator"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type tuiMode int

const (
	modeMenu tuiMode = iota
	modeComposing
	modeContinue
)

// composedMsg carries a finished answer back to the model.
type composedMsg struct {
	label string
	comp  intelligence.Composition
}

type tuiKeyMap struct {
	Quit key.Binding
	Back key.Binding
}

func defaultTUIKeys() tuiKeyMap {
	return tuiKeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "sair")),
		Back: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "voltar")),
	}
}

// tuiModel is the bubbletea front end over the same resolver and composer
// as the console session. One compose runs at a time; keys other than quit
// are ignored meanwhile.
type tuiModel struct {
	ctx    context.Context
	app    *App
	pos    *navigator.Position
	logger *slog.Logger

	input   textinput.Model
	history *inputHistory
	spin    spinner.Model
	keys    tuiKeyMap

	mode     tuiMode
	output   string
	width    int
	quitting bool
}

func newTUIModel(ctx context.Context, app *App) tuiModel {
	ti := textinput.New()
	ti.Prompt = formatter.StylePurple.Render("› ")
	ti.Placeholder = "número, opção ou pergunta"
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)

	if ctx == nil {
		ctx = context.Background()
	}
	return tuiModel{
		ctx:     ctx,
		app:     app,
		pos:     navigator.NewPosition(app.Tree.Root),
		logger:  app.logger().With("session", uuid.NewString(), "frontend", "tui"),
		input:   ti,
		history: &inputHistory{},
		spin:    sp,
		keys:    defaultTUIKeys(),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.mode != modeComposing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case composedMsg:
		m.mode = modeContinue
		m.output = formatter.FormatAnswer(msg.label, msg.comp.Text, msg.comp.Source)
		m.logger.Info("turn", "action", string(navigator.ActionAnswer), "source", msg.comp.Source)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.mode == modeComposing {
		return m, nil
	}
	if m.mode == modeMenu && key.Matches(msg, m.keys.Back) {
		return m.submit(navigator.KeywordBack)
	}
	switch msg.Type {
	case tea.KeyUp:
		if line, ok := m.history.prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil
	case tea.KeyDown:
		if line, ok := m.history.next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil
	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		m.history.add(line)
		if m.mode == modeContinue {
			return m.answerContinue(line)
		}
		return m.submit(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) submit(line string) (tea.Model, tea.Cmd) {
	action := m.app.Resolver.Resolve(line, m.pos)

	switch action.Kind {
	case navigator.ActionExit:
		m.quitting = true
		return m, tea.Quit
	case navigator.ActionAnswer:
		m.mode = modeComposing
		m.output = ""
		return m, tea.Batch(m.spin.Tick, m.compose(action))
	}

	comp := m.app.Answers.Respond(m.ctx, action)
	m.output = formatter.FormatResponse(comp.Text, toneFor(action))
	m.logger.Info("turn", "action", string(action.Kind), "reason", string(action.Reason))
	return m, nil
}

func (m tuiModel) compose(action navigator.Action) tea.Cmd {
	ctx, answers, leaf := m.ctx, m.app.Answers, action.Leaf
	return func() tea.Msg {
		return composedMsg{label: leaf.Label(), comp: answers.Compose(ctx, leaf)}
	}
}

func (m tuiModel) answerContinue(line string) (tea.Model, tea.Cmd) {
	cont, ok := parseContinue(line)
	switch {
	case !ok:
		m.output = formatter.FormatError(msgContinueBad)
	case cont:
		m.mode = modeMenu
		m.output = ""
	default:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.quitting {
		return msgFarewell + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		for i, opt := range m.pos.Current.Options() {
			fmt.Fprintf(&b, "  %s %s\n", formatter.StyleBlue.Render(fmt.Sprintf("%d.", i+1)), opt)
		}
		if m.output != "" {
			b.WriteString(m.output)
		}
	case modeComposing:
		b.WriteString("  " + m.spin.View() + " " + formatter.Dim("consultando o modelo...") + "\n")
	case modeContinue:
		b.WriteString(m.output + "\n")
		b.WriteString(formatter.Bold(strings.TrimSpace(promptContinue)) + "\n")
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m tuiModel) renderHeader() string {
	title := formatter.StylePurple.Render("faqbot")
	trail := m.pos.Trail()
	if len(trail) > 0 {
		title += " " + formatter.Dim("› "+strings.Join(trail, " › "))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + "\n" + sep
}

func (m tuiModel) renderHelp() string {
	var hints []string
	switch m.mode {
	case modeContinue:
		hints = append(hints, msgContinueHint)
	case modeMenu:
		hints = append(hints, "enter: escolher")
		if !m.pos.Stack.Empty() {
			h := m.keys.Back.Help()
			hints = append(hints, h.Key+": "+h.Desc)
		}
	}
	h := m.keys.Quit.Help()
	hints = append(hints, h.Key+": "+h.Desc)
	return formatter.Dim(strings.Join(hints, "  "))
}
