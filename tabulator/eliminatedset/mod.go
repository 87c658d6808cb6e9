package eliminatedset

// EliminatedSet holds the candidates knocked out so far. It only grows.
type EliminatedSet[C comparable] interface {
	// Add marks the candidates as eliminated. Returns the number of
	// candidates that were not eliminated before.
	Add(candidates ...C) int

	Contains(candidate C) bool

	Len() int

	// All returns the eliminated candidates in elimination order
	All() []C
}

// New returns an empty set
func New[C comparable]() EliminatedSet[C] {
	return &eliminatedSet[C]{
		members: make(map[C]struct{}),
	}
}

type eliminatedSet[C comparable] struct {
	members map[C]struct{}
	order   []C
}

// Implements EliminatedSet
func (s *eliminatedSet[C]) Add(candidates ...C) int {
	added := 0
	for _, c := range candidates {
		if _, ok := s.members[c]; ok {
			continue
		}
		s.members[c] = struct{}{}
		s.order = append(s.order, c)
		added++
	}
	return added
}

// Implements EliminatedSet
func (s *eliminatedSet[C]) Contains(candidate C) bool {
	_, ok := s.members[candidate]
	return ok
}

// Implements EliminatedSet
func (s *eliminatedSet[C]) Len() int {
	return len(s.order)
}

// Implements EliminatedSet
func (s *eliminatedSet[C]) All() []C {
	all := make([]C, len(s.order))
	copy(all, s.order)
	return all
}
