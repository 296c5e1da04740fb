package navigator

import "github.com/alexanderramin/faqbot/internal/domain"

// Stack holds the ancestors of the current menu, nearest last. Push and
// Pop never write into a backing array another copy can see, so a Stack
// (or Position) copied by value stays a valid snapshot.
type Stack struct {
	frames []*domain.Branch
}

// Push records b as the parent of the next level.
func (s *Stack) Push(b *domain.Branch) {
	n := len(s.frames)
	s.frames = append(s.frames[:n:n], b)
}

// Pop removes and returns the nearest ancestor.
func (s *Stack) Pop() (*domain.Branch, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	top := s.frames[len(s.frames)-1]
	n := len(s.frames) - 1
	s.frames = s.frames[:n:n]
	return top, true
}

// Peek returns the nearest ancestor without removing it.
func (s Stack) Peek() (*domain.Branch, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

// Depth is the number of ancestors, equal to the current menu depth.
func (s Stack) Depth() int { return len(s.frames) }

// Empty reports whether the current menu is the root.
func (s Stack) Empty() bool { return len(s.frames) == 0 }

// Clone returns an independent copy.
func (s Stack) Clone() Stack {
	return Stack{frames: append([]*domain.Branch(nil), s.frames...)}
}
