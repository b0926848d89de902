package tournaments

import (
	"fmt"
	"strings"
)

// Position is a longitude/latitude pair in degrees.
type Position struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Tournament is one World Cup edition.
type Tournament struct {
	Edition           string   `json:"edition"`
	Year              int      `json:"year"`
	Host              string   `json:"host"`
	HostCountryCode   string   `json:"hostCountryCode"`
	Winner            string   `json:"winner"`
	RunnerUp          string   `json:"runnerUp"`
	Teams             int      `json:"teams"`
	Matches           int      `json:"matches"`
	Goals             int      `json:"goals"`
	AverageGoals      float64  `json:"averageGoals"`
	AverageAttendance int      `json:"averageAttendance"`
	WinnerPos         Position `json:"winnerPos"`
	RunnerUpPos       Position `json:"runnerUpPos"`
	TeamISO           []string `json:"teamIso"`
	TeamNames         []string `json:"teamNames"`
}

// Dimension is a numeric tournament attribute that can be charted.
type Dimension string

const (
	DimensionAttendance   Dimension = "attendance"
	DimensionGoals        Dimension = "goals"
	DimensionMatches      Dimension = "matches"
	DimensionTeams        Dimension = "teams"
	DimensionAverageGoals Dimension = "avg_goals"

	DefaultDimension = DimensionAttendance
)

// Dimensions lists the chartable dimensions in menu order.
func Dimensions() []Dimension {
	return []Dimension{DimensionAttendance, DimensionGoals, DimensionMatches, DimensionTeams, DimensionAverageGoals}
}

// ParseDimension validates a dimension name. An empty string selects the default.
func ParseDimension(raw string) (Dimension, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultDimension, nil
	}
	for _, d := range Dimensions() {
		if string(d) == raw {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q", raw)
}

// Value returns the tournament's value for the dimension.
func (t Tournament) Value(d Dimension) float64 {
	switch d {
	case DimensionAttendance:
		return float64(t.AverageAttendance)
	case DimensionGoals:
		return float64(t.Goals)
	case DimensionMatches:
		return float64(t.Matches)
	case DimensionTeams:
		return float64(t.Teams)
	case DimensionAverageGoals:
		return t.AverageGoals
	default:
		return 0
	}
}

// Participated reports whether the ISO code took part in the tournament.
func (t Tournament) Participated(iso string) bool {
	for _, code := range t.TeamISO {
		if code == iso {
			return true
		}
	}
	return false
}

// Info is the summary panel shown for a selected tournament.
type Info struct {
	Edition  string   `json:"edition"`
	Year     int      `json:"year"`
	Host     string   `json:"host"`
	Winner   string   `json:"winner"`
	RunnerUp string   `json:"runnerUp"`
	Teams    []string `json:"teams"`
}

// Info builds the summary panel for the tournament.
func (t Tournament) Info() Info {
	return Info{
		Edition:  t.Edition,
		Year:     t.Year,
		Host:     t.Host,
		Winner:   t.Winner,
		RunnerUp: t.RunnerUp,
		Teams:    append([]string(nil), t.TeamNames...),
	}
}

// FindByYear returns the tournament held in year.
func FindByYear(all []Tournament, year int) (Tournament, bool) {
	for _, t := range all {
		if t.Year == year {
			return t, true
		}
	}
	return Tournament{}, false
}
