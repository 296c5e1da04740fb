package navigator

import (
	"errors"

	"github.com/alexanderramin/faqbot/internal/domain"
)

var (
	// ErrInvalidSelection indicates input that maps to no actionable option.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrAlreadyAtRoot indicates a back request at the top-level menu.
	ErrAlreadyAtRoot = errors.New("already at root menu")
)

// ActionKind identifies what a line of input resolved to.
type ActionKind string

const (
	ActionExit    ActionKind = "exit"
	ActionBack    ActionKind = "back"
	ActionDescend ActionKind = "descend"
	ActionAnswer  ActionKind = "answer"
	ActionInvalid ActionKind = "invalid"
)

// InvalidReason explains an ActionInvalid.
type InvalidReason string

const (
	ReasonNone          InvalidReason = ""
	ReasonNoMatch       InvalidReason = "no_match"
	ReasonOutOfRange    InvalidReason = "out_of_range"
	ReasonAlreadyAtRoot InvalidReason = "already_at_root"
)

// MatchChannel names the resolution step that produced a candidate index.
type MatchChannel string

const (
	ChannelNone    MatchChannel = ""
	ChannelNumeric MatchChannel = "numeric"
	ChannelFuzzy   MatchChannel = "fuzzy"
	ChannelKeyword MatchChannel = "keyword"
)

// MatchResult is the candidate index found for an input, if any.
type MatchResult struct {
	Index   int
	Found   bool
	Score   int
	Channel MatchChannel
}

// Action is the resolved outcome of one input line.
//
// Branch is the menu that becomes current (Descend, Back). Leaf is set for
// Answer. Index is the 1-based option chosen for Descend and Answer.
type Action struct {
	Kind   ActionKind
	Branch *domain.Branch
	Leaf   *domain.Leaf
	Index  int
	Reason InvalidReason
	Match  MatchResult
}

// Err maps an invalid action to its error class; other kinds return nil.
func (a Action) Err() error {
	if a.Kind != ActionInvalid {
		return nil
	}
	if a.Reason == ReasonAlreadyAtRoot {
		return ErrAlreadyAtRoot
	}
	return ErrInvalidSelection
}

func invalid(reason InvalidReason, m MatchResult) Action {
	return Action{Kind: ActionInvalid, Reason: reason, Match: m}
}
