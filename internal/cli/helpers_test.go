package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/faqbot/internal/catalog"
	"github.com/alexanderramin/faqbot/internal/intelligence"
	"github.com/alexanderramin/faqbot/internal/navigator"
	"github.com/alexanderramin/faqbot/internal/textproc"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (g *stubGenerator) Generate(context.Context, string, int) (string, error) {
	g.calls++
	return g.text, g.err
}

// testApp wires the embedded catalog with gen as the generator. A nil gen
// disables enrichment.
func testApp(t *testing.T, gen intelligence.Generator) *App {
	t.Helper()
	tree, err := catalog.Default()
	require.NoError(t, err)

	words := append(tree.Texts(), navigator.KeywordExit, navigator.KeywordBack, "sim", "nao")
	pipeline := textproc.NewPipeline(textproc.NewVocabulary(words...))

	return &App{
		Tree:     tree,
		Resolver: navigator.NewResolver(pipeline),
		Answers:  intelligence.NewAnswerService(gen),
	}
}

// executeCmd runs the root command with args, feeding stdin, and returns
// everything written to stdout and stderr with colors removed.
func executeCmd(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}
