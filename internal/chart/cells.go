package chart

import (
	"math"
	"strconv"

	"worldcup-stats-service/internal/domain/results"
)

const (
	aggregateBarUnit   = 8.0
	goalRangeStart     = 10.0
	goalRangeEnd       = 180.0
	aggregateBarHeight = 10.0
	gameBarHeight      = 3.0
)

// CountBar is a wins/losses/total-games cell.
type CountBar struct {
	Value int     `json:"value"`
	Width float64 `json:"width"`
	Fill  string  `json:"fill"`
	// Label is empty for values of one or less, which are too narrow to print in.
	Label string `json:"label,omitempty"`
}

// NewCountBar sizes and colours a count cell.
func NewCountBar(v int) CountBar {
	bar := CountBar{
		Value: v,
		Width: float64(v) * aggregateBarUnit,
		Fill:  aggregateColors.Color(math.Abs(float64(v))),
	}
	if v > 1 {
		bar.Label = strconv.Itoa(v)
	}
	return bar
}

// GoalScale maps goal counts onto the goals column.
func GoalScale(teams []results.TeamRecord) LinearScale {
	return NewLinearScale(0, float64(results.MaxGoalsMade(teams)), goalRangeStart, goalRangeEnd)
}

// Mark is a goal marker circle.
type Mark struct {
	X      float64 `json:"x"`
	Fill   string  `json:"fill"`
	Stroke string  `json:"stroke,omitempty"`
}

// GoalCell is the goals column: a bar spanning the goal difference and two markers.
type GoalCell struct {
	Made      Mark    `json:"made"`
	Conceded  Mark    `json:"conceded"`
	BarX      float64 `json:"barX"`
	BarWidth  float64 `json:"barWidth"`
	BarHeight float64 `json:"barHeight"`
	BarFill   string  `json:"barFill"`
	Delta     int     `json:"delta"`
}

// NewGoalCell lays out the goals column. Game rows use hollow markers and a thin bar.
func NewGoalCell(scale LinearScale, made, conceded int, game bool) GoalCell {
	lo, hi := min(made, conceded), max(made, conceded)
	cell := GoalCell{
		BarX:      scale.Scale(float64(lo)),
		BarWidth:  scale.Scale(float64(hi)) - scale.Scale(float64(lo)),
		BarHeight: aggregateBarHeight,
		Delta:     made - conceded,
	}
	if game {
		cell.BarHeight = gameBarHeight
	}

	madeColor := goalColors.Color(1)
	switch {
	case made > conceded:
		cell.BarFill = goalColors.Color(1)
	case conceded > made:
		cell.BarFill = goalColors.Color(-1)
	default:
		cell.BarFill = ColorNone
		madeColor = ColorTie
	}

	cell.Conceded = Mark{X: scale.Scale(float64(conceded)), Fill: goalColors.Color(-1)}
	cell.Made = Mark{X: scale.Scale(float64(made)), Fill: madeColor}
	if game {
		cell.Conceded = Mark{X: cell.Conceded.X, Fill: ColorNone, Stroke: goalColors.Color(-1)}
		cell.Made = Mark{X: cell.Made.X, Fill: ColorNone, Stroke: madeColor}
	}
	return cell
}
