package textproc

import (
	"regexp"
	"strings"
)

// Normalizer converts raw text into a token sequence that can be rejoined
// with single spaces for comparison.
type Normalizer interface {
	Process(raw string) []string
}

// minWordLen drops single-letter words; numbers are always kept.
const minWordLen = 2

var tokenPattern = regexp.MustCompile(`-?[0-9]+|[a-z]+`)

var numericPattern = regexp.MustCompile(`^-?[0-9]+$`)

// pluralRules map folded Portuguese plural endings to singular endings,
// most specific first.
var pluralRules = []struct{ suffix, replacement string }{
	{"oes", "ao"},
	{"aes", "ao"},
	{"ais", "al"},
	{"eis", "el"},
	{"ois", "ol"},
	{"uis", "ul"},
	{"ns", "m"},
	{"es", ""},
	{"s", ""},
}

// Pipeline is the default Normalizer: fold, tokenize, spell-correct and
// lemmatize against a fixed vocabulary.
type Pipeline struct {
	vocab *Vocabulary
}

// NewPipeline creates a Pipeline over vocab. A nil vocabulary disables
// correction and lemmatization.
func NewPipeline(vocab *Vocabulary) *Pipeline {
	if vocab == nil {
		vocab = NewVocabulary()
	}
	return &Pipeline{vocab: vocab}
}

// Process implements Normalizer.
func (p *Pipeline) Process(raw string) []string {
	tokens := tokenize(Fold(raw))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isNumeric(tok) {
			out = append(out, tok)
			continue
		}
		if len(tok) < minWordLen {
			continue
		}
		out = append(out, p.lemma(p.vocab.Correct(tok)))
	}
	return out
}

// Join processes raw and rejoins the tokens with single spaces.
func Join(n Normalizer, raw string) string {
	return Fold(strings.Join(n.Process(raw), " "))
}

func (p *Pipeline) lemma(tok string) string {
	if p.vocab.Contains(tok) {
		return tok
	}
	for _, r := range pluralRules {
		if !strings.HasSuffix(tok, r.suffix) || len(tok) <= len(r.suffix)+1 {
			continue
		}
		cand := strings.TrimSuffix(tok, r.suffix) + r.replacement
		if p.vocab.Contains(cand) {
			return cand
		}
	}
	return tok
}

func tokenize(folded string) []string {
	return tokenPattern.FindAllString(folded, -1)
}

func isNumeric(tok string) bool {
	return numericPattern.MatchString(tok)
}
