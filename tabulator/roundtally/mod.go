package roundtally

import (
	"go.dedis.ch/rcir/types"
)

// RoundTally counts the votes of a single round. Candidates are kept in
// the order they received their first vote so that every scan over the
// tally is reproducible.
type RoundTally[C comparable] interface {
	// Increment adds one vote for the candidate. Returns false, leaving
	// the count untouched, if the count would pass the tally's limit.
	Increment(candidate C) bool

	// Get returns 0 for candidates without votes
	Get(candidate C) uint32

	Len() int

	// Entries returns a copy of the tally in first-seen order
	Entries() []types.VoteCount[C]

	// AtLeast returns the candidates with at least n votes
	AtLeast(n uint32) []C

	// Minimum returns the lowest count and every candidate holding it.
	// Returns 0, nil on an empty tally.
	Minimum() (uint32, []C)
}

// New returns an empty tally whose counters may not exceed limit
func New[C comparable](limit uint32) RoundTally[C] {
	return &roundTally[C]{
		index: make(map[C]int),
		limit: limit,
	}
}

type roundTally[C comparable] struct {
	index   map[C]int
	entries []types.VoteCount[C]
	limit   uint32
}

// Implements RoundTally
func (t *roundTally[C]) Increment(candidate C) bool {
	i, ok := t.index[candidate]
	if !ok {
		if t.limit == 0 {
			return false
		}
		t.index[candidate] = len(t.entries)
		t.entries = append(t.entries, types.VoteCount[C]{Candidate: candidate, Votes: 1})
		return true
	}

	if t.entries[i].Votes >= t.limit {
		return false
	}
	t.entries[i].Votes++
	return true
}

// Implements RoundTally
func (t *roundTally[C]) Get(candidate C) uint32 {
	i, ok := t.index[candidate]
	if !ok {
		return 0
	}
	return t.entries[i].Votes
}

// Implements RoundTally
func (t *roundTally[C]) Len() int {
	return len(t.entries)
}

// Implements RoundTally
func (t *roundTally[C]) Entries() []types.VoteCount[C] {
	entries := make([]types.VoteCount[C], len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Implements RoundTally
func (t *roundTally[C]) AtLeast(n uint32) []C {
	var candidates []C
	for _, e := range t.entries {
		if e.Votes >= n {
			candidates = append(candidates, e.Candidate)
		}
	}
	return candidates
}

// Implements RoundTally
func (t *roundTally[C]) Minimum() (uint32, []C) {
	if len(t.entries) == 0 {
		return 0, nil
	}

	lowest := t.entries[0].Votes
	losers := []C{t.entries[0].Candidate}
	for _, e := range t.entries[1:] {
		switch {
		case e.Votes < lowest:
			lowest = e.Votes
			losers = []C{e.Candidate}
		case e.Votes == lowest:
			losers = append(losers, e.Candidate)
		}
	}
	return lowest, losers
}
