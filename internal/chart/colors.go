package chart

// Palette used across the chart and table.
const (
	ColorYellow       = "#ffff00"
	ColorRed          = "#ff0000"
	ColorSelected     = "#800080"
	ColorAggregateLo  = "#ece2f0"
	ColorAggregateHi  = "#016450"
	ColorGoalConceded = "#cb181d"
	ColorGoalMade     = "#034e7b"
	ColorTie          = "#808080"
	ColorNone         = "#ffffff"
)

// goalColors classifies a goal difference sign: negative red, positive blue.
var goalColors = QuantizeScale{
	Domain: [2]float64{-1, 1},
	Colors: []string{ColorGoalConceded, ColorGoalMade},
}

// aggregateColors shades wins/losses/games bars; seven games is a full tournament.
var aggregateColors = NewColorScale(0, 7, ColorAggregateLo, ColorAggregateHi)
