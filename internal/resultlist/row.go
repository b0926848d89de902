package resultlist

import "worldcup-stats-service/internal/domain/results"

// Kind distinguishes the two row variants.
type Kind string

const (
	KindAggregate Kind = "aggregate"
	KindGame      Kind = "game"
)

// Row is one rendered table entry: either an AggregateRow or a GameRow.
// The interface is sealed; consumers switch on the concrete type.
type Row interface {
	// Team is the aggregate team the row belongs to.
	Team() string
	Kind() Kind
	sealed()
}

// AggregateRow summarises a team's whole tournament.
type AggregateRow struct {
	Record results.TeamRecord
}

func (r AggregateRow) Team() string { return r.Record.Team }
func (AggregateRow) Kind() Kind     { return KindAggregate }
func (AggregateRow) sealed()        {}

// GameRow is a single match shown under an expanded team.
type GameRow struct {
	Owner string
	Game  results.GameRecord
}

func (r GameRow) Team() string { return r.Owner }
func (GameRow) Kind() Kind     { return KindGame }
func (GameRow) sealed()        {}
