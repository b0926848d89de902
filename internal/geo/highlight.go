package geo

import "worldcup-stats-service/internal/domain/tournaments"

// Country classes applied to map paths.
const (
	ClassHost      = "host"
	ClassTeam      = "team"
	ClassCountries = "countries"
)

// Marker classes for the podium circles.
const (
	MarkerGold   = "gold"
	MarkerSilver = "silver"

	markerRadius = 12
)

// Country is one map feature.
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CountryClass is the highlight applied to one country.
type CountryClass struct {
	ID    string `json:"id"`
	Class string `json:"class"`
}

// Marker is a circle drawn over the map.
type Marker struct {
	Class  string  `json:"class"`
	Team   string  `json:"team"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Map is everything needed to redraw the map for one tournament.
type Map struct {
	Year      int            `json:"year"`
	Countries []CountryClass `json:"countries"`
	Markers   []Marker       `json:"markers"`
}

// Classify returns the class for each country: the host wins over participation.
func Classify(t tournaments.Tournament, countries []Country) []CountryClass {
	out := make([]CountryClass, 0, len(countries))
	for _, c := range countries {
		class := ClassCountries
		switch {
		case c.ID == t.HostCountryCode:
			class = ClassHost
		case t.Participated(c.ID):
			class = ClassTeam
		}
		out = append(out, CountryClass{ID: c.ID, Class: class})
	}
	return out
}

// Markers places the runner-up then the winner, so the winner draws on top.
func Markers(t tournaments.Tournament, proj ConicConformal) []Marker {
	return []Marker{
		{
			Class:  MarkerSilver,
			Team:   t.RunnerUp,
			Center: proj.Project(t.RunnerUpPos.Lon, t.RunnerUpPos.Lat),
			Radius: markerRadius,
		},
		{
			Class:  MarkerGold,
			Team:   t.Winner,
			Center: proj.Project(t.WinnerPos.Lon, t.WinnerPos.Lat),
			Radius: markerRadius,
		},
	}
}

// Build produces the full map state for a tournament.
func Build(t tournaments.Tournament, countries []Country, proj ConicConformal) Map {
	return Map{
		Year:      t.Year,
		Countries: Classify(t, countries),
		Markers:   Markers(t, proj),
	}
}
