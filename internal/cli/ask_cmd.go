package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/fuzzy"
	"github.com/alexanderramin/faqbot/internal/textproc"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask PATH",
		Short: "Answer one question by its full path",
		Long: `Answer one question without a session. PATH joins the menu labels with
"/", for example:

  faqbot ask "Comandos e Funcionalidades/Comandos Básicos/Como usar a REPL em Python?"

Case and accents are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := app.Tree.Lookup(args[0])
			if !ok {
				if hint := pathHint(app.Tree, args[0]); hint != "" {
					return fmt.Errorf("unknown topic path %q; did you mean %q?", args[0], hint)
				}
				return fmt.Errorf("unknown topic path %q (see 'faqbot tree')", args[0])
			}
			leaf, ok := n.(*domain.Leaf)
			if !ok {
				branch := n.(*domain.Branch)
				return fmt.Errorf("%q is a menu, not a question; options: %s",
					n.Label(), strings.Join(branch.Options(), ", "))
			}

			comp := app.Answers.Compose(cmd.Context(), leaf)
			if comp.Err != nil {
				app.logger().Warn("ask enrichment failed", "path", args[0], "error", comp.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnswer(leaf.Label(), comp.Text, comp.Source))
			return nil
		},
	}
}

// pathHint returns the full path of the node whose label best matches the
// last segment of path, or "" when no label scores above the default
// threshold. Earlier nodes win ties.
func pathHint(t *domain.Tree, path string) string {
	parts := strings.Split(strings.Trim(path, domain.PathSeparator), domain.PathSeparator)
	needle := textproc.Fold(parts[len(parts)-1])

	best, bestScore := "", fuzzy.DefaultThreshold
	t.Walk(func(p []string, n domain.Node) {
		if score := fuzzy.PartialRatio(needle, textproc.Fold(n.Label())); score > bestScore {
			best, bestScore = strings.Join(p, domain.PathSeparator), score
		}
	})
	return best
}
