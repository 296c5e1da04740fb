package navigator

import "github.com/alexanderramin/faqbot/internal/domain"

// Position is a session cursor: the current menu and its ancestors.
type Position struct {
	Current *domain.Branch
	Stack   Stack
}

// NewPosition starts at root with an empty stack.
func NewPosition(root *domain.Branch) *Position {
	return &Position{Current: root}
}

// Clone returns a Position that shares tree nodes but not the stack.
func (p Position) Clone() Position {
	return Position{Current: p.Current, Stack: p.Stack.Clone()}
}

// Apply commits the navigation effect of a: Descend pushes the current menu
// and moves into the child, Back pops. Other kinds leave p unchanged.
func (p *Position) Apply(a Action) {
	switch a.Kind {
	case ActionDescend:
		p.Stack.Push(p.Current)
		p.Current = a.Branch
	case ActionBack:
		if parent, ok := p.Stack.Pop(); ok {
			p.Current = parent
		}
	}
}

// Trail returns the labels from the first submenu down to current,
// excluding the root.
func (p Position) Trail() []string {
	out := make([]string, 0, len(p.Stack.frames))
	for i, b := range p.Stack.frames {
		if i == 0 {
			continue
		}
		out = append(out, b.Label())
	}
	if !p.Stack.Empty() {
		out = append(out, p.Current.Label())
	}
	return out
}
