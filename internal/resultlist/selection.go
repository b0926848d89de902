package resultlist

import "worldcup-stats-service/internal/domain/results"

// Selection describes the row under the pointer. Hovering never changes the list.
type Selection struct {
	Kind     Kind           `json:"kind"`
	Team     string         `json:"team"`
	Opponent string         `json:"opponent,omitempty"`
	Result   results.Result `json:"result"`
}

// Selection reports what the row at index refers to.
func (m *Manager) Selection(index int) (Selection, error) {
	row, err := m.Row(index)
	if err != nil {
		return Selection{}, err
	}

	switch r := row.(type) {
	case AggregateRow:
		return Selection{Kind: KindAggregate, Team: r.Record.Team, Result: r.Record.Result}, nil
	case GameRow:
		return Selection{Kind: KindGame, Team: r.Owner, Opponent: r.Game.Opponent, Result: r.Game.Result}, nil
	default:
		return Selection{}, nil
	}
}
