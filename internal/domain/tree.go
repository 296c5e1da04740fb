package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/textproc"
)

var (
	// ErrIndexOutOfRange is returned by ChildAt for positions outside [1, Len()].
	// Resolution validates indices before calling it, so seeing this error
	// means a caller broke the contract.
	ErrIndexOutOfRange = errors.New("option index out of range")

	// ErrDuplicateLabel indicates two options of one branch share a label.
	ErrDuplicateLabel = errors.New("duplicate option label")

	// ErrEmptyBranch indicates a branch was built without options.
	ErrEmptyBranch = errors.New("branch has no options")
)

// PathSeparator joins labels in full topic paths.
const PathSeparator = "/"

// Node is either a *Branch (submenu) or a *Leaf (final answer).
type Node interface {
	Label() string
	isNode()
}

// Branch is a menu level whose children are shown in display order.
type Branch struct {
	label    string
	children []Node
}

// Leaf holds the canned answer for a question.
type Leaf struct {
	label  string
	answer string
}

// NewLeaf creates a leaf node.
func NewLeaf(label, answer string) *Leaf {
	return &Leaf{label: label, answer: answer}
}

// NewBranch creates a branch over the given children. Labels must be unique
// within the branch and at least one child is required.
func NewBranch(label string, children ...Node) (*Branch, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%q: %w", label, ErrEmptyBranch)
	}
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		if seen[c.Label()] {
			return nil, fmt.Errorf("%q in %q: %w", c.Label(), label, ErrDuplicateLabel)
		}
		seen[c.Label()] = true
	}
	owned := make([]Node, len(children))
	copy(owned, children)
	return &Branch{label: label, children: owned}, nil
}

func (b *Branch) Label() string { return b.label }
func (b *Branch) isNode()       {}

func (l *Leaf) Label() string { return l.label }
func (l *Leaf) isNode()       {}

// Answer returns the canned answer text.
func (l *Leaf) Answer() string { return l.answer }

// Len returns the number of options in the branch.
func (b *Branch) Len() int { return len(b.children) }

// Options returns the option labels in display order.
func (b *Branch) Options() []string {
	out := make([]string, len(b.children))
	for i, c := range b.children {
		out[i] = c.Label()
	}
	return out
}

// ChildAt returns the child at the 1-based position index.
func (b *Branch) ChildAt(index int) (Node, error) {
	if index < 1 || index > len(b.children) {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, index, len(b.children))
	}
	return b.children[index-1], nil
}

// IsLeaf reports whether n is a final answer rather than a submenu.
func IsLeaf(n Node) bool {
	_, ok := n.(*Leaf)
	return ok
}

// Tree is the immutable FAQ hierarchy. The root branch label is not part of
// any path.
type Tree struct {
	Root  *Branch
	index map[string]Node
}

// NewTree wraps root and builds the full-path index.
func NewTree(root *Branch) *Tree {
	t := &Tree{Root: root, index: make(map[string]Node)}
	t.Walk(func(path []string, n Node) {
		t.index[pathKey(path)] = n
	})
	return t
}

// Walk visits every node below the root depth-first in display order.
// path holds the labels from the first level down to n inclusive.
func (t *Tree) Walk(fn func(path []string, n Node)) {
	var visit func(b *Branch, prefix []string)
	visit = func(b *Branch, prefix []string) {
		for _, c := range b.children {
			path := append(append([]string(nil), prefix...), c.Label())
			fn(path, c)
			if sub, ok := c.(*Branch); ok {
				visit(sub, path)
			}
		}
	}
	visit(t.Root, nil)
}

// Lookup finds a node by its full path, e.g. "Sobre Python/História do Python".
// Matching ignores case, accents and surrounding separators.
func (t *Tree) Lookup(path string) (Node, bool) {
	parts := strings.Split(strings.Trim(path, PathSeparator), PathSeparator)
	n, ok := t.index[pathKey(parts)]
	return n, ok
}

// TopicIndex returns the 1-based position of the first root topic whose
// folded label contains the folded text or is contained in it, or 0 when
// none does.
func (t *Tree) TopicIndex(text string) int {
	needle := textproc.Fold(text)
	if needle == "" {
		return 0
	}
	for i, c := range t.Root.children {
		label := textproc.Fold(c.Label())
		if strings.Contains(label, needle) || strings.Contains(needle, label) {
			return i + 1
		}
	}
	return 0
}

// TopicAt returns the root topic label at the 1-based position.
func (t *Tree) TopicAt(index int) (string, bool) {
	n, err := t.Root.ChildAt(index)
	if err != nil {
		return "", false
	}
	return n.Label(), true
}

// Texts returns every label and answer in the tree.
func (t *Tree) Texts() []string {
	var out []string
	t.Walk(func(_ []string, n Node) {
		out = append(out, n.Label())
		if leaf, ok := n.(*Leaf); ok {
			out = append(out, leaf.Answer())
		}
	})
	return out
}

func pathKey(parts []string) string {
	folded := make([]string, 0, len(parts))
	for _, p := range parts {
		folded = append(folded, textproc.Fold(p))
	}
	return strings.Join(folded, PathSeparator)
}
