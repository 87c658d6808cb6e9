package resultstore

import (
	"sort"
	"sync"

	"go.dedis.ch/rcir/types"
)

// ResultStore describes the primitives of a simple tabulation storage.
type ResultStore interface {
	// Get returns false if not found
	Get(id string) (types.Tabulation, bool)

	Set(id string, val types.Tabulation)

	Delete(id string) bool

	Len() int

	// GetAll returns the tabulations ordered by creation time
	GetAll() []types.Tabulation
}

// New returns an in-memory storage.
func New() ResultStore {
	return &store{
		data: make(map[string]types.Tabulation),
	}
}

// store implements an in-memory store.
type store struct {
	sync.Mutex
	data map[string]types.Tabulation
}

// Get implements ResultStore
func (s *store) Get(id string) (types.Tabulation, bool) {
	s.Lock()
	defer s.Unlock()

	val, ok := s.data[id]
	return val, ok
}

// Set implements ResultStore
func (s *store) Set(id string, val types.Tabulation) {
	s.Lock()
	defer s.Unlock()

	s.data[id] = val
}

// Delete implements ResultStore
func (s *store) Delete(id string) bool {
	s.Lock()
	defer s.Unlock()

	_, ok := s.data[id]
	delete(s.data, id)
	return ok
}

// Len implements ResultStore
func (s *store) Len() int {
	s.Lock()
	defer s.Unlock()

	return len(s.data)
}

// GetAll implements ResultStore
func (s *store) GetAll() []types.Tabulation {
	s.Lock()
	defer s.Unlock()

	tabulations := make([]types.Tabulation, 0, len(s.data))
	for _, t := range s.data {
		tabulations = append(tabulations, t)
	}

	sort.Slice(tabulations, func(i, j int) bool {
		if tabulations[i].Created.Equal(tabulations[j].Created) {
			return tabulations[i].ID < tabulations[j].ID
		}
		return tabulations[i].Created.Before(tabulations[j].Created)
	})

	return tabulations
}
