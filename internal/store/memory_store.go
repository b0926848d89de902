package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/geo"
	"worldcup-stats-service/internal/providers"
	"worldcup-stats-service/internal/resultlist"
)

// ErrNotLoaded is returned by readers before the dataset has been loaded.
var ErrNotLoaded = errors.New("dataset not loaded")

// MemoryStore keeps a thread-safe snapshot of the loaded dataset in memory.
// The bracket is laid out once at load so readers never mutate it.
type MemoryStore struct {
	mu          sync.RWMutex
	loaded      bool
	tournaments []tournaments.Tournament
	teams       []results.TeamRecord
	countries   []geo.Country
	tree        *bracket.Tree
	layout      bracket.Layout
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load replaces the snapshot with ds, building and laying out the bracket in a width x height box.
// A rejected dataset leaves the previous one in place.
func (s *MemoryStore) Load(ds providers.Dataset, width, height float64) error {
	seen := make(map[string]struct{}, len(ds.Teams))
	for _, t := range ds.Teams {
		if _, dup := seen[t.Team]; dup {
			return fmt.Errorf("%w: %q", resultlist.ErrDuplicateTeam, t.Team)
		}
		seen[t.Team] = struct{}{}
	}

	tree, err := bracket.Build(ds.Bracket)
	if err != nil {
		return err
	}
	layout := bracket.Lay(tree, width, height)

	sorted := slices.Clone(ds.Tournaments)
	slices.SortStableFunc(sorted, func(a, b tournaments.Tournament) int { return a.Year - b.Year })

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tournaments = sorted
	s.teams = slices.Clone(ds.Teams)
	s.countries = slices.Clone(ds.Countries)
	s.tree = tree
	s.layout = layout
	s.loaded = true
	return nil
}

// Ready reports whether a dataset has been loaded.
func (s *MemoryStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ListTournaments returns a copy of every edition, ordered by year.
func (s *MemoryStore) ListTournaments() []tournaments.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tournaments)
}

// GetTournament retrieves an edition by year.
func (s *MemoryStore) GetTournament(year int) (tournaments.Tournament, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return tournaments.FindByYear(s.tournaments, year)
}

// ListTeams returns the aggregate team records in dataset order. Game slices are shared and must not be modified.
func (s *MemoryStore) ListTeams() []results.TeamRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.teams)
}

// ListCountries returns the map countries.
func (s *MemoryStore) ListCountries() []geo.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.countries)
}

// Bracket returns the laid-out knockout tree.
func (s *MemoryStore) Bracket() (*bracket.Tree, bracket.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, bracket.Layout{}, ErrNotLoaded
	}
	return s.tree, s.layout, nil
}
