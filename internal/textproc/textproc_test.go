package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"  História ":     "historia",
		"NÃO":             "nao",
		"Características": "caracteristicas",
		"sáir":            "sair",
		"Funções":         "funcoes",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fold(in), "Fold(%q)", in)
	}
}

func TestPipeline_Process_KeepsNumbers(t *testing.T) {
	p := NewPipeline(NewVocabulary("Sobre Python"))

	assert.Equal(t, []string{"3"}, p.Process("3"))
	assert.Equal(t, []string{"-1"}, p.Process(" -1 "))
	assert.Equal(t, []string{"0"}, p.Process("0"))
}

func TestPipeline_Process_DropsSingleLetters(t *testing.T) {
	p := NewPipeline(NewVocabulary("Como usar a REPL"))

	assert.Empty(t, p.Process("a"))
	assert.Empty(t, p.Process(""))
	assert.Equal(t, []string{"usar", "repl"}, p.Process("usar a REPL"))
}

func TestPipeline_Process_CorrectsSpelling(t *testing.T) {
	p := NewPipeline(NewVocabulary("História do Python"))

	assert.Equal(t, []string{"historia", "do", "python"}, p.Process("Históriaa do Pythn"))
}

func TestPipeline_Process_Lemmatizes(t *testing.T) {
	p := NewPipeline(NewVocabulary("Função avançada", "Comando"))

	assert.Equal(t, []string{"funcao"}, p.Process("Funções"))
	assert.Equal(t, []string{"comando"}, p.Process("comandos"))
}

func TestPipeline_Process_UnknownWordsPassThrough(t *testing.T) {
	p := NewPipeline(NewVocabulary("Sobre Python"))

	assert.Equal(t, []string{"xyzzy"}, p.Process("XYZZY"))
}

func TestPipeline_NilVocabulary(t *testing.T) {
	p := NewPipeline(nil)

	assert.Equal(t, []string{"historias"}, p.Process("Histórias"))
}

func TestVocabulary_Correct(t *testing.T) {
	v := NewVocabulary("gato gato pato", "sair")

	assert.Equal(t, "gato", v.Correct("rato"), "ties prefer the more frequent word")
	assert.Equal(t, "sai", v.Correct("sai"), "short tokens are never corrected")
	assert.Equal(t, "sair", v.Correct("sair"))
	assert.Equal(t, "zzzz", v.Correct("zzzz"))
}

func TestVocabulary_Counts(t *testing.T) {
	v := NewVocabulary("Python é Python", "versão 3")

	assert.Equal(t, 2, v.Frequency("python"))
	assert.True(t, v.Contains("versao"))
	assert.False(t, v.Contains("3"))
	assert.Equal(t, 3, v.Len())
}

func TestWordFrequency(t *testing.T) {
	got := WordFrequency([]string{"python", "api", "python"})
	assert.Equal(t, map[string]int{"python": 2, "api": 1}, got)
}

func TestJoin(t *testing.T) {
	p := NewPipeline(NewVocabulary("voltar"))

	assert.Equal(t, "voltar", Join(p, "  VOLTAR "))
	assert.Equal(t, "", Join(p, "   "))
}

func TestNewVocabulary_MatchesWordFrequency(t *testing.T) {
	texts := []string{"Como usar a REPL em Python?", "Python 3 e a REPL"}
	v := NewVocabulary(texts...)

	var tokens []string
	for _, text := range texts {
		for _, tok := range tokenize(Fold(text)) {
			if !isNumeric(tok) {
				tokens = append(tokens, tok)
			}
		}
	}
	want := WordFrequency(tokens)

	assert.Equal(t, len(want), v.Len())
	for word, n := range want {
		assert.Equal(t, n, v.Frequency(word), "word %q", word)
	}
	assert.Equal(t, 2, v.Frequency("python"))
}
