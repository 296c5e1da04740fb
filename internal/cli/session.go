package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/navigator"
	"github.com/google/uuid"
)

const (
	promptChoice    = "Digite sua escolha: "
	promptContinue  = "Deseja continuar? (1 para Sim / 2 para Não): "
	msgContinueBad  = "Opção inválida. Tente novamente."
	msgFarewell     = "Agradecemos por usar o chatbot! Até a próxima!"
	msgContinueHint = "1 para continuar, 2 para encerrar"
)

// chatSession is one console conversation. It owns its position in the
// tree; the tree, resolver and composer are shared.
type chatSession struct {
	id     string
	app    *App
	pos    *navigator.Position
	in     *promptReader
	out    io.Writer
	logger *slog.Logger
}

func newChatSession(app *App, in io.Reader, out io.Writer) *chatSession {
	id := uuid.NewString()
	return &chatSession{
		id:     id,
		app:    app,
		pos:    navigator.NewPosition(app.Tree.Root),
		in:     newPromptReader(in),
		out:    out,
		logger: app.logger().With("session", id),
	}
}

// Run loops over read, resolve and respond until the user exits, declines
// to continue, or input ends. Only I/O failures are returned.
func (s *chatSession) Run(ctx context.Context) error {
	s.logger.Info("session started", "interactive", s.app.interactive())
	if s.app.interactive() {
		fmt.Fprint(s.out, formatter.Banner())
	}

	for {
		if ctx.Err() != nil {
			return s.end("canceled")
		}

		fmt.Fprint(s.out, formatter.FormatMenu(s.pos.Trail(), s.pos.Current.Options()))
		fmt.Fprint(s.out, promptChoice)

		line, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.end("eof")
			}
			return fmt.Errorf("reading input: %w", err)
		}

		action := s.app.Resolver.Resolve(line, s.pos)
		comp := s.app.Answers.Respond(ctx, action)
		fmt.Fprint(s.out, formatter.FormatResponse(comp.Text, toneFor(action)))

		s.logger.Info("turn",
			"action", string(action.Kind),
			"reason", string(action.Reason),
			"depth", s.pos.Stack.Depth(),
			"source", comp.Source,
		)

		if action.Kind == navigator.ActionExit {
			return s.end("exit")
		}
		if comp.NeedsFollowup {
			cont, err := s.askContinue()
			if err != nil {
				return err
			}
			if !cont {
				return s.end("declined")
			}
		}
	}
}

// askContinue repeats the continuation prompt until it gets a valid answer.
// End of input counts as no.
func (s *chatSession) askContinue() (bool, error) {
	for {
		fmt.Fprint(s.out, promptContinue)
		line, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, fmt.Errorf("reading input: %w", err)
		}
		if cont, ok := parseContinue(line); ok {
			return cont, nil
		}
		fmt.Fprintln(s.out, formatter.FormatError(msgContinueBad))
	}
}

func (s *chatSession) end(reason string) error {
	fmt.Fprintf(s.out, "\n%s\n", msgFarewell)
	s.logger.Info("session ended", "reason", reason)
	return nil
}

func toneFor(a navigator.Action) formatter.Tone {
	switch a.Kind {
	case navigator.ActionDescend:
		return formatter.ToneSuccess
	case navigator.ActionInvalid:
		if a.Reason == navigator.ReasonAlreadyAtRoot {
			return formatter.ToneWarning
		}
		return formatter.ToneError
	default:
		return formatter.ToneInfo
	}
}
