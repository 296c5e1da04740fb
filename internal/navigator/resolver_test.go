package navigator

import (
	"strconv"
	"testing"

	"github.com/alexanderramin/faqbot/internal/catalog"
	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/textproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *domain.Tree {
	t.Helper()
	tree, err := catalog.Default()
	require.NoError(t, err)
	return tree
}

func testResolver(t *testing.T, tree *domain.Tree, opts ...Option) *Resolver {
	t.Helper()
	texts := append(tree.Texts(), KeywordExit, KeywordBack)
	return NewResolver(textproc.NewPipeline(textproc.NewVocabulary(texts...)), opts...)
}

func branchAt(t *testing.T, tree *domain.Tree, path string) *domain.Branch {
	t.Helper()
	n, ok := tree.Lookup(path)
	require.True(t, ok, "path %q", path)
	b, ok := n.(*domain.Branch)
	require.True(t, ok, "path %q is not a branch", path)
	return b
}

// staticNormalizer ignores its input, standing in for a lemmatizer that
// mangles everything.
type staticNormalizer []string

func (s staticNormalizer) Process(string) []string { return s }

func TestResolve_NumericWithinRange(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)

	for k := 1; k <= tree.Root.Len(); k++ {
		pos := NewPosition(tree.Root)
		a := r.Resolve(strconv.Itoa(k), pos)

		want, err := tree.Root.ChildAt(k)
		require.NoError(t, err)
		require.Equal(t, ActionDescend, a.Kind, "input %d", k)
		assert.Same(t, want, a.Branch)
		assert.Equal(t, k, a.Index)
		assert.Equal(t, ChannelNumeric, a.Match.Channel)
		assert.Same(t, a.Branch, pos.Current)
		assert.Equal(t, 1, pos.Stack.Depth())
	}
}

func TestResolve_NumericAtLeafMenuAnswers(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	menu := branchAt(t, tree, "Sobre Python/História do Python")
	pos := &Position{Current: menu}
	pos.Stack.Push(tree.Root)
	pos.Stack.Push(branchAt(t, tree, "Sobre Python"))

	for k := 1; k <= menu.Len(); k++ {
		a := r.Resolve(strconv.Itoa(k), pos)

		require.Equal(t, ActionAnswer, a.Kind)
		assert.Equal(t, menu.Options()[k-1], a.Leaf.Label())
		assert.Same(t, menu, pos.Current, "answers never move the cursor")
		assert.Equal(t, 2, pos.Stack.Depth())
	}
}

func TestResolve_NumericOutOfRange(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)

	for _, in := range []string{"0", "5", "-1", "99999999999999999999999"} {
		pos := NewPosition(tree.Root)
		a := r.Resolve(in, pos)

		assert.Equal(t, ActionInvalid, a.Kind, "input %q", in)
		assert.Equal(t, ReasonOutOfRange, a.Reason, "input %q", in)
		assert.ErrorIs(t, a.Err(), ErrInvalidSelection)
		assert.True(t, pos.Stack.Empty())
		assert.Same(t, tree.Root, pos.Current)
	}
}

func TestResolve_ExitKeyword(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)

	for _, in := range []string{"sair", "Sair", "SAIR", "sáir", "  sair  "} {
		a := r.Resolve(in, NewPosition(tree.Root))
		assert.Equal(t, ActionExit, a.Kind, "input %q", in)
		assert.NoError(t, a.Err())
	}
}

func TestResolve_BackAtRoot(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	pos := NewPosition(tree.Root)

	a := r.Resolve("Voltar", pos)

	assert.Equal(t, ActionInvalid, a.Kind)
	assert.Equal(t, ReasonAlreadyAtRoot, a.Reason)
	assert.ErrorIs(t, a.Err(), ErrAlreadyAtRoot)
	assert.Same(t, tree.Root, pos.Current)
}

func TestResolve_DescendThenBackRestoresIdentity(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	pos := NewPosition(tree.Root)

	require.Equal(t, ActionDescend, r.Resolve("2", pos).Kind)
	prior := pos.Current
	require.Equal(t, ActionDescend, r.Resolve("1", pos).Kind)
	require.Equal(t, 2, pos.Stack.Depth())

	a := r.Resolve("VOLTAR", pos)
	require.Equal(t, ActionBack, a.Kind)
	assert.Same(t, prior, a.Branch)
	assert.Same(t, prior, pos.Current)
	assert.Equal(t, 1, pos.Stack.Depth())

	a = r.Resolve("voltar", pos)
	require.Equal(t, ActionBack, a.Kind)
	assert.Same(t, tree.Root, pos.Current)
	assert.True(t, pos.Stack.Empty())
}

func TestDecide_Idempotent(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	pos := NewPosition(tree.Root)
	r.Resolve("1", pos)

	for _, in := range []string{"1", "historia", "voltar", "sair", "", "9", "xyz"} {
		snapshot := pos.Clone()
		first := r.Decide(in, snapshot)
		second := r.Decide(in, snapshot)
		assert.Equal(t, first, second, "input %q", in)
		assert.Equal(t, 1, pos.Stack.Depth())
	}
}

func TestResolve_FuzzyLabel(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	menu := branchAt(t, tree, "Sobre Python")
	pos := &Position{Current: menu}
	pos.Stack.Push(tree.Root)

	a := r.Resolve("historia", pos)

	require.Equal(t, ActionDescend, a.Kind)
	assert.Equal(t, "História do Python", a.Branch.Label())
	assert.Equal(t, 1, a.Index)
	assert.Equal(t, ChannelFuzzy, a.Match.Channel)
	assert.Greater(t, a.Match.Score, 80)
}

func TestResolve_FuzzyInputs(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)

	cases := map[string]string{
		"comandos":       "Comandos e Funcionalidades",
		"aplicações":     "Aplicações do Python",
		"Sobre o Python": "Sobre Python",
		"comunidade":     "Recursos e Comunidade",
	}
	for in, want := range cases {
		a := r.Decide(in, *NewPosition(tree.Root))
		require.Equal(t, ActionDescend, a.Kind, "input %q", in)
		assert.Equal(t, want, a.Branch.Label(), "input %q", in)
	}
}

func TestResolve_FuzzyAnswer(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	menu := branchAt(t, tree, "Comandos e Funcionalidades/Comandos Básicos")

	a := r.Decide("repl", Position{Current: menu})

	require.Equal(t, ActionAnswer, a.Kind)
	assert.Equal(t, "Como usar a REPL em Python?", a.Leaf.Label())
}

func TestResolve_NoMatch(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)

	for _, in := range []string{"", "   ", "xyz", "abacaxi"} {
		a := r.Decide(in, *NewPosition(tree.Root))
		assert.Equal(t, ActionInvalid, a.Kind, "input %q", in)
		assert.Equal(t, ReasonNoMatch, a.Reason, "input %q", in)
	}
}

func TestResolve_FirstMatchWinsOverBestScore(t *testing.T) {
	menu, err := domain.NewBranch("root",
		domain.NewLeaf("Python avançado", "a"),
		domain.NewLeaf("Python", "b"),
	)
	require.NoError(t, err)
	r := NewResolver(textproc.NewPipeline(nil))

	a := r.Decide("python", Position{Current: menu})

	require.Equal(t, ActionAnswer, a.Kind)
	assert.Equal(t, 1, a.Index)
}

func TestResolve_ReservedKeywordsBeatOptions(t *testing.T) {
	menu, err := domain.NewBranch("root",
		domain.NewLeaf("Sair", "never shown"),
		domain.NewLeaf("Voltar ao início", "never shown"),
	)
	require.NoError(t, err)
	r := NewResolver(textproc.NewPipeline(nil))

	assert.Equal(t, ActionExit, r.Decide("sair", Position{Current: menu}).Kind)

	a := r.Decide("voltar", Position{Current: menu})
	assert.Equal(t, ActionInvalid, a.Kind)
	assert.Equal(t, ReasonAlreadyAtRoot, a.Reason)
}

func TestResolve_KeywordFallbackUsesRawInput(t *testing.T) {
	tree := testTree(t)
	r := NewResolver(staticNormalizer{"zzzz"})

	a := r.Decide("comandos", *NewPosition(tree.Root))

	require.Equal(t, ActionDescend, a.Kind)
	assert.Equal(t, 3, a.Index)
	assert.Equal(t, ChannelKeyword, a.Match.Channel)
}

func TestResolve_ThresholdIsExclusive(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree, WithThreshold(100))

	a := r.Decide("comunidade", *NewPosition(tree.Root))

	assert.Equal(t, ActionInvalid, a.Kind)
	assert.Equal(t, 100, r.Threshold())
}

func TestScenario_ComandosBasicosRepl(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	pos := NewPosition(tree.Root)

	a := r.Resolve("3", pos)
	require.Equal(t, ActionDescend, a.Kind)
	assert.Equal(t, "Comandos e Funcionalidades", a.Branch.Label())

	a = r.Resolve("1", pos)
	require.Equal(t, ActionDescend, a.Kind)
	assert.Equal(t, "Comandos Básicos", a.Branch.Label())

	a = r.Resolve("2", pos)
	require.Equal(t, ActionAnswer, a.Kind)
	assert.Equal(t, "Como usar a REPL em Python?", a.Leaf.Label())
	assert.Equal(t, []string{"Comandos e Funcionalidades", "Comandos Básicos"}, pos.Trail())
}

func TestDecide_PositionCopyIsUnaffectedByResolve(t *testing.T) {
	tree := testTree(t)
	r := testResolver(t, tree)
	pos := NewPosition(tree.Root)
	require.Equal(t, ActionDescend, r.Resolve("1", pos).Kind)
	require.Equal(t, ActionDescend, r.Resolve("1", pos).Kind)

	snap := *pos
	parent, _ := snap.Stack.Peek()

	require.Equal(t, ActionBack, r.Resolve("voltar", pos).Kind)
	require.Equal(t, ActionDescend, r.Resolve("2", pos).Kind)

	top, ok := snap.Stack.Peek()
	require.True(t, ok)
	assert.Same(t, parent, top)
	assert.Equal(t, 2, snap.Stack.Depth())
	assert.Equal(t, []string{"Sobre Python", "História do Python"}, snap.Trail())

	a := r.Decide("voltar", snap)
	require.Equal(t, ActionBack, a.Kind)
	assert.Same(t, parent, a.Branch)

	snap.Apply(a)
	assert.Equal(t, []string{"Sobre Python"}, snap.Trail())
	assert.Equal(t, []string{"Sobre Python", "Características do Python"}, pos.Trail())
}
