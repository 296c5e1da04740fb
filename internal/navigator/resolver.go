// Package navigator resolves free-form user input against the current menu
// of an FAQ tree and tracks the path of visited menus.
package navigator

import (
	"io"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/fuzzy"
	"github.com/alexanderramin/faqbot/internal/textproc"
)

// Reserved keywords, compared after folding. They take precedence over any
// menu option with the same text.
const (
	KeywordExit = "sair"
	KeywordBack = "voltar"
)

var numericInput = regexp.MustCompile(`^-?[0-9]+$`)

// Resolver maps one line of input to an Action.
type Resolver struct {
	normalizer textproc.Normalizer
	threshold  int
	logger     *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithThreshold sets the score an option must exceed to match.
func WithThreshold(threshold int) Option {
	return func(r *Resolver) { r.threshold = threshold }
}

// WithLogger logs every decision at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver using n for input normalization.
func NewResolver(n textproc.Normalizer, opts ...Option) *Resolver {
	r := &Resolver{
		normalizer: n,
		threshold:  fuzzy.DefaultThreshold,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Threshold returns the configured match threshold.
func (r *Resolver) Threshold() int { return r.threshold }

// Resolve decides the action for raw at pos and commits its navigation
// effect to pos.
func (r *Resolver) Resolve(raw string, pos *Position) Action {
	a := r.Decide(raw, *pos)
	pos.Apply(a)
	return a
}

// Decide returns the action for raw without changing pos. Resolution order:
// exit keyword, back keyword, numeric literal, fuzzy match of the
// normalized text, fuzzy match of the folded raw text.
func (r *Resolver) Decide(raw string, pos Position) Action {
	normalized := textproc.Join(r.normalizer, raw)

	a := r.decide(raw, normalized, pos)
	r.logger.Debug("input resolved",
		"normalized", normalized,
		"action", string(a.Kind),
		"reason", string(a.Reason),
		"channel", string(a.Match.Channel),
		"score", a.Match.Score,
		"index", a.Match.Index,
		"depth", pos.Stack.Depth(),
	)
	return a
}

func (r *Resolver) decide(raw, normalized string, pos Position) Action {
	switch normalized {
	case KeywordExit:
		return Action{Kind: ActionExit}
	case KeywordBack:
		parent, ok := pos.Stack.Peek()
		if !ok {
			return invalid(ReasonAlreadyAtRoot, MatchResult{})
		}
		return Action{Kind: ActionBack, Branch: parent}
	}

	m := r.Match(raw, normalized, pos.Current)
	if !m.Found {
		return invalid(ReasonNoMatch, m)
	}
	if m.Index < 1 || m.Index > pos.Current.Len() {
		return invalid(ReasonOutOfRange, m)
	}

	child, err := pos.Current.ChildAt(m.Index)
	if err != nil {
		// Unreachable after the range check above.
		panic(err)
	}
	switch c := child.(type) {
	case *domain.Branch:
		return Action{Kind: ActionDescend, Branch: c, Index: m.Index, Match: m}
	case *domain.Leaf:
		return Action{Kind: ActionAnswer, Leaf: c, Index: m.Index, Match: m}
	}
	return invalid(ReasonNoMatch, m)
}

// Match finds the candidate option index for an input. The first channel
// that yields a candidate wins; within a fuzzy channel the first option in
// display order above the threshold wins, not the best-scoring one.
func (r *Resolver) Match(raw, normalized string, menu *domain.Branch) MatchResult {
	if numericInput.MatchString(normalized) {
		n, err := strconv.Atoi(normalized)
		if err != nil {
			n = 0
		}
		return MatchResult{Index: n, Found: true, Channel: ChannelNumeric}
	}
	if m := r.firstFuzzy(normalized, menu, ChannelFuzzy); m.Found {
		return m
	}
	return r.firstFuzzy(textproc.Fold(raw), menu, ChannelKeyword)
}

func (r *Resolver) firstFuzzy(text string, menu *domain.Branch, ch MatchChannel) MatchResult {
	best := 0
	for i, label := range menu.Options() {
		score := fuzzy.PartialRatio(textproc.Fold(label), text)
		if fuzzy.Matches(score, r.threshold) {
			return MatchResult{Index: i + 1, Found: true, Score: score, Channel: ch}
		}
		if score > best {
			best = score
		}
	}
	return MatchResult{Score: best}
}
