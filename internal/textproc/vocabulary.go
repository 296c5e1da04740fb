package textproc

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// Vocabulary is the set of known folded words with their frequencies.
// It is built once and read concurrently afterwards.
type Vocabulary struct {
	freq map[string]int
}

// NewVocabulary counts the words of every text. Texts are folded and
// tokenized the same way user input is.
func NewVocabulary(texts ...string) *Vocabulary {
	var words []string
	for _, text := range texts {
		for _, tok := range tokenize(Fold(text)) {
			if !isNumeric(tok) {
				words = append(words, tok)
			}
		}
	}
	return &Vocabulary{freq: WordFrequency(words)}
}

// WordFrequency counts occurrences of each token.
func WordFrequency(tokens []string) map[string]int {
	out := make(map[string]int, len(tokens))
	for _, t := range tokens {
		out[t]++
	}
	return out
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int { return len(v.freq) }

// Contains reports whether word is known.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.freq[word]
	return ok
}

// Frequency returns how often word occurred in the source texts.
func (v *Vocabulary) Frequency(word string) int { return v.freq[word] }

// Correct returns the closest known word for an unknown token, or the token
// itself when it is known or nothing is close enough. Distance 1 is tried
// for tokens of at least 4 runes and distance 2 for at least 7. Ties go to
// the more frequent word, then to lexical order.
func (v *Vocabulary) Correct(token string) string {
	if v.Contains(token) {
		return token
	}
	n := len([]rune(token))
	for _, dist := range []int{1, 2} {
		if n < minLenForDistance(dist) {
			break
		}
		var candidates []string
		for word := range v.freq {
			if abs(len([]rune(word))-n) > dist {
				continue
			}
			if levenshtein.ComputeDistance(token, word) == dist {
				candidates = append(candidates, word)
			}
		}
		if len(candidates) > 0 {
			sort.Slice(candidates, func(i, j int) bool {
				fi, fj := v.freq[candidates[i]], v.freq[candidates[j]]
				if fi != fj {
					return fi > fj
				}
				return candidates[i] < candidates[j]
			})
			return candidates[0]
		}
	}
	return token
}

func minLenForDistance(dist int) int {
	if dist == 1 {
		return 4
	}
	return 7
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
