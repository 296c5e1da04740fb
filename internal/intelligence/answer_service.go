package intelligence

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/navigator"
)

// Generator produces free text for a prompt. Implementations report failures
// as errors; the composer turns them into inline text.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

const (
	SourceLLM           = "llm"
	SourceDeterministic = "deterministic"
)

// Composition is the displayable result of one resolution.
type Composition struct {
	Text string

	// NeedsFollowup is true only for answers; the session then asks whether
	// to continue.
	NeedsFollowup bool

	// Source is SourceLLM when generated text was appended.
	Source string

	// Err holds the generation failure behind an error text, if any.
	Err error
}

// AnswerService formats session output and enriches leaf answers with
// generated text.
type AnswerService struct {
	gen       Generator
	maxTokens int
	logger    *slog.Logger
}

// AnswerOption configures an AnswerService.
type AnswerOption func(*AnswerService)

// WithMaxTokens sets the generation limit passed with every prompt.
func WithMaxTokens(n int) AnswerOption {
	return func(s *AnswerService) { s.maxTokens = n }
}

// WithAnswerLogger sets the logger for generation failures.
func WithAnswerLogger(logger *slog.Logger) AnswerOption {
	return func(s *AnswerService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewAnswerService creates an AnswerService. A nil gen disables enrichment.
func NewAnswerService(gen Generator, opts ...AnswerOption) *AnswerService {
	s := &AnswerService{
		gen:       gen,
		maxTokens: 100000,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether answers are enriched.
func (s *AnswerService) Enabled() bool { return s.gen != nil }

// Compose builds the answer text for leaf. It never fails: generation
// errors become part of the text.
func (s *AnswerService) Compose(ctx context.Context, leaf *domain.Leaf) Composition {
	c := Composition{NeedsFollowup: true, Source: SourceDeterministic}
	if s.gen == nil {
		c.Text = formatAnswer(leaf.Answer(), detailsDisabled)
		return c
	}

	text, err := s.gen.Generate(ctx, buildEnrichPrompt(leaf.Label(), leaf.Answer()), s.maxTokens)
	switch {
	case err != nil:
		s.logger.Warn("answer enrichment failed", "label", leaf.Label(), "error", err)
		c.Err = err
		c.Text = formatAnswer(leaf.Answer(), generationErrorDetails(err))
	case strings.TrimSpace(text) == "":
		c.Text = formatAnswer(leaf.Answer(), detailsEmpty)
	default:
		c.Source = SourceLLM
		c.Text = formatAnswer(leaf.Answer(), strings.TrimSpace(text))
	}
	return c
}

// Respond returns the output for any resolved action. Answers go through
// Compose; the other kinds map to fixed messages.
func (s *AnswerService) Respond(ctx context.Context, a navigator.Action) Composition {
	c := Composition{Source: SourceDeterministic}
	switch a.Kind {
	case navigator.ActionAnswer:
		return s.Compose(ctx, a.Leaf)
	case navigator.ActionDescend:
		c.Text = descendMessage(a.Branch.Label())
	case navigator.ActionBack:
		c.Text = MsgBack
	case navigator.ActionExit:
		c.Text = MsgExit
	case navigator.ActionInvalid:
		if a.Reason == navigator.ReasonAlreadyAtRoot {
			c.Text = MsgAlreadyAtRoot
		} else {
			c.Text = MsgInvalid
		}
	}
	return c
}
