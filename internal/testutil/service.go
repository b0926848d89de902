package testutil

import (
	"testing"

	"worldcup-stats-service/internal/app/tables"
	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/store"
)

// NewLoadedStore returns a memory store preloaded with SampleDataset.
func NewLoadedStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	ms := store.NewMemoryStore()
	if err := ms.Load(SampleDataset(), 400, 300); err != nil {
		t.Fatalf("load sample dataset: %v", err)
	}
	return ms
}

// NewServices builds tournament and table services over a loaded store.
func NewServices(t *testing.T) (*apptournaments.Service, *tables.Service) {
	t.Helper()
	ms := NewLoadedStore(t)
	return apptournaments.NewService(ms, chart.DefaultFrame()),
		tables.NewService(ms, store.NewSessionStore(16, nil), nil, nil)
}
