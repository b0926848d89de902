// Package resultlist keeps the ordered list of team and game rows behind the
// expandable results table. A Manager is not safe for concurrent use; callers
// that share one must serialise access.
package resultlist

import (
	"errors"
	"fmt"
	"slices"

	"worldcup-stats-service/internal/domain/results"
)

var (
	// ErrInvalidArgument is returned when a row index falls outside the current list.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateTeam is returned when the dataset names a team twice.
	ErrDuplicateTeam = errors.New("duplicate team")
)

// Manager owns the row list rendered by the results table.
type Manager struct {
	teams []results.TeamRecord
	rows  []Row
}

// New builds a Manager in the collapsed state. The dataset is copied so later
// changes by the caller do not leak into the table.
func New(teams []results.TeamRecord) (*Manager, error) {
	seen := make(map[string]struct{}, len(teams))
	owned := make([]results.TeamRecord, len(teams))
	for i, t := range teams {
		if _, dup := seen[t.Team]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTeam, t.Team)
		}
		seen[t.Team] = struct{}{}
		t.Games = slices.Clone(t.Games)
		owned[i] = t
	}

	m := &Manager{teams: owned}
	m.Reset()
	return m, nil
}

// Reset restores one aggregate row per team in dataset order.
func (m *Manager) Reset() {
	m.rows = make([]Row, 0, len(m.teams))
	for _, t := range m.teams {
		m.rows = append(m.rows, AggregateRow{Record: t})
	}
}

// Toggle expands or collapses the team at index. Game rows are ignored.
func (m *Manager) Toggle(index int) error {
	if index < 0 || index >= len(m.rows) {
		return fmt.Errorf("%w: row %d outside [0,%d)", ErrInvalidArgument, index, len(m.rows))
	}

	agg, ok := m.rows[index].(AggregateRow)
	if !ok {
		return nil
	}

	games := agg.Record.Games
	if ExpandedAt(m.rows, index) {
		m.rows = slices.Delete(m.rows, index+1, index+1+len(games))
		return nil
	}

	inserted := make([]Row, len(games))
	for i, g := range games {
		inserted[i] = GameRow{Owner: agg.Record.Team, Game: g}
	}
	m.rows = slices.Insert(m.rows, index+1, inserted...)
	return nil
}

// ExpandedAt reports whether the row at index is followed by its own games.
func ExpandedAt(rows []Row, index int) bool {
	if index < 0 || index+1 >= len(rows) {
		return false
	}
	next, ok := rows[index+1].(GameRow)
	return ok && next.Owner == rows[index].Team()
}

// Expanded reports whether the named team currently shows its games.
func (m *Manager) Expanded(team string) bool {
	for i, r := range m.rows {
		if _, ok := r.(AggregateRow); ok && r.Team() == team {
			return ExpandedAt(m.rows, i)
		}
	}
	return false
}

// Rows returns a copy of the current row list.
func (m *Manager) Rows() []Row {
	return slices.Clone(m.rows)
}

// Row returns the entry at index.
func (m *Manager) Row(index int) (Row, error) {
	if index < 0 || index >= len(m.rows) {
		return nil, fmt.Errorf("%w: row %d outside [0,%d)", ErrInvalidArgument, index, len(m.rows))
	}
	return m.rows[index], nil
}

// Len is the number of rows currently rendered.
func (m *Manager) Len() int {
	return len(m.rows)
}

// Teams returns the dataset the manager was built from.
func (m *Manager) Teams() []results.TeamRecord {
	return slices.Clone(m.teams)
}
