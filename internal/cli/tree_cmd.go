package cli

import (
	"fmt"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/spf13/cobra"
)

func newTreeCmd(app *App) *cobra.Command {
	var topic string
	var answers bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the FAQ tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := ""
			if topic != "" {
				i := app.Tree.TopicIndex(topic)
				if i == 0 {
					return fmt.Errorf("no topic matches %q", topic)
				}
				root, _ = app.Tree.TopicAt(i)
			}

			items := treeItems(app.Tree, root, answers)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header(app.Tree.Root.Label()))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTree(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "only show the first root topic matching this text")
	cmd.Flags().BoolVar(&answers, "answers", false, "include answer texts")
	return cmd
}

// treeItems lists the tree in display order, numbering each node within its
// menu. A non-empty root keeps only that top-level topic.
func treeItems(t *domain.Tree, root string, withAnswers bool) []formatter.TreeItem {
	var items []formatter.TreeItem
	var numbers []int

	t.Walk(func(path []string, n domain.Node) {
		level := len(path)
		if len(numbers) > level {
			numbers = numbers[:level]
		}
		for len(numbers) < level {
			numbers = append(numbers, 0)
		}
		numbers[level-1]++

		if root != "" && path[0] != root {
			return
		}

		item := formatter.TreeItem{Title: n.Label(), Number: numbers[level-1], Level: level}
		if leaf, ok := n.(*domain.Leaf); ok {
			if withAnswers {
				item.Body = leaf.Answer()
			}
		} else {
			item.Detail = fmt.Sprintf("%d opções", n.(*domain.Branch).Len())
		}
		items = append(items, item)
	})

	formatter.MarkLast(items)
	return items
}
