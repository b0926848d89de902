package providers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/geo"
)

// csvTable reads a headed CSV file and exposes cells by column name.
type csvTable struct {
	file    string
	columns map[string]int
	records [][]string
}

func readCSV(file string, data []byte, required ...string) (*csvTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DecodeError{File: file, Err: errors.New("empty file")}
		}
		return nil, &DecodeError{File: file, Err: err}
	}

	t := &csvTable{file: file, columns: make(map[string]int, len(header))}
	for i, h := range header {
		t.columns[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := t.columns[col]; !ok {
			return nil, &DecodeError{File: file, Line: 1, Err: fmt.Errorf("missing column %q", col)}
		}
	}

	t.records, err = r.ReadAll()
	if err != nil {
		return nil, &DecodeError{File: file, Err: err}
	}
	return t, nil
}

// row wraps one record; parse errors stick to the first failure.
type row struct {
	table  *csvTable
	record []string
	line   int
	err    error
}

func (r *row) str(col string) string {
	idx, ok := r.table.columns[col]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r *row) int(col string) int {
	raw := r.str(col)
	if raw == "" || r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.err = &DecodeError{File: r.table.file, Line: r.line, Err: fmt.Errorf("column %s: %w", col, err)}
	}
	return v
}

func (r *row) float(col string) float64 {
	raw := r.str(col)
	if raw == "" || r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		r.err = &DecodeError{File: r.table.file, Line: r.line, Err: fmt.Errorf("column %s: %w", col, err)}
	}
	return v
}

func (r *row) list(col string) []string {
	raw := r.str(col)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (t *csvTable) rows() []*row {
	out := make([]*row, len(t.records))
	for i, rec := range t.records {
		// header is line 1
		out[i] = &row{table: t, record: rec, line: i + 2}
	}
	return out
}

// DecodeTournaments parses fifa-world-cup.csv.
func DecodeTournaments(data []byte) ([]tournaments.Tournament, error) {
	table, err := readCSV(FileTournaments, data, "YEAR", "HOST", "WINNER", "RUNNER_UP")
	if err != nil {
		return nil, err
	}

	out := make([]tournaments.Tournament, 0, len(table.records))
	for _, r := range table.rows() {
		t := tournaments.Tournament{
			Edition:           r.str("EDITION"),
			Year:              r.int("YEAR"),
			Host:              r.str("HOST"),
			HostCountryCode:   r.str("HOST_COUNTRY_CODE"),
			Winner:            r.str("WINNER"),
			RunnerUp:          r.str("RUNNER_UP"),
			Teams:             r.int("TEAMS"),
			Matches:           r.int("MATCHES"),
			Goals:             r.int("GOALS"),
			AverageGoals:      r.float("AVERAGE_GOALS"),
			AverageAttendance: r.int("AVERAGE_ATTENDANCE"),
			WinnerPos:         tournaments.Position{Lon: r.float("WIN_LON"), Lat: r.float("WIN_LAT")},
			RunnerUpPos:       tournaments.Position{Lon: r.float("RUP_LON"), Lat: r.float("RUP_LAT")},
			TeamISO:           r.list("TEAM_LIST"),
			TeamNames:         r.list("TEAM_NAMES"),
		}
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, t)
	}
	return out, nil
}

// DecodeBracket parses fifa-tree.csv. An empty ParentGame marks the root.
func DecodeBracket(data []byte) ([]bracket.Entry, error) {
	table, err := readCSV(FileBracket, data, "Team", "Opponent", "ParentGame")
	if err != nil {
		return nil, err
	}

	out := make([]bracket.Entry, 0, len(table.records))
	for _, r := range table.rows() {
		e := bracket.Entry{
			Team:          r.str("Team"),
			Opponent:      r.str("Opponent"),
			Wins:          r.int("Wins"),
			Losses:        r.int("Losses"),
			GoalsMade:     r.int("Goals Made"),
			GoalsConceded: r.int("Goals Conceded"),
			ParentGame:    bracket.NoParent,
		}
		if r.str("ParentGame") != "" {
			e.ParentGame = r.int("ParentGame")
		}
		if r.err != nil {
			return nil, r.err
		}
		out = append(out, e)
	}
	return out, nil
}

type nestedResult struct {
	Label string `json:"label"`
}

type nestedValue struct {
	GoalsMade     int            `json:"Goals Made"`
	GoalsConceded int            `json:"Goals Conceded"`
	Wins          int            `json:"Wins"`
	Losses        int            `json:"Losses"`
	TotalGames    int            `json:"TotalGames"`
	Result        nestedResult   `json:"Result"`
	Type          string         `json:"type"`
	Opponent      string         `json:"Opponent"`
	Games         []nestedRecord `json:"games"`
}

type nestedRecord struct {
	Key   string      `json:"key"`
	Value nestedValue `json:"value"`
}

// DecodeTeamResults parses fifa-matches.json: a key/value list of aggregate
// records, each carrying its games keyed by opponent.
func DecodeTeamResults(data []byte) ([]results.TeamRecord, error) {
	var raw []nestedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{File: FileMatches, Err: err}
	}

	out := make([]results.TeamRecord, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, rec := range raw {
		if rec.Key == "" {
			return nil, &DecodeError{File: FileMatches, Err: fmt.Errorf("record %d has no team", i)}
		}
		if _, dup := seen[rec.Key]; dup {
			return nil, &DecodeError{File: FileMatches, Err: fmt.Errorf("record %d repeats team %q", i, rec.Key)}
		}
		seen[rec.Key] = struct{}{}
		if rec.Value.Type != "" && rec.Value.Type != "aggregate" {
			return nil, &DecodeError{File: FileMatches, Err: fmt.Errorf("record %q: expected aggregate, got %q", rec.Key, rec.Value.Type)}
		}

		team := results.TeamRecord{
			Team:          rec.Key,
			Wins:          rec.Value.Wins,
			Losses:        rec.Value.Losses,
			TotalGames:    rec.Value.TotalGames,
			GoalsMade:     rec.Value.GoalsMade,
			GoalsConceded: rec.Value.GoalsConceded,
			Result:        results.NewResult(rec.Value.Result.Label),
			Games:         make([]results.GameRecord, 0, len(rec.Value.Games)),
		}
		for _, g := range rec.Value.Games {
			opponent := g.Key
			if opponent == "" {
				opponent = g.Value.Opponent
			}
			team.Games = append(team.Games, results.GameRecord{
				Opponent:      opponent,
				GoalsMade:     g.Value.GoalsMade,
				GoalsConceded: g.Value.GoalsConceded,
				Wins:          g.Value.Wins,
				Losses:        g.Value.Losses,
				Result:        results.NewResult(g.Value.Result.Label),
			})
		}
		if team.TotalGames == 0 {
			team.TotalGames = len(team.Games)
		}
		out = append(out, team)
	}
	return out, nil
}

// DecodeCountries parses countries.json.
func DecodeCountries(data []byte) ([]geo.Country, error) {
	var out []geo.Country
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &DecodeError{File: FileCountries, Err: err}
	}
	return out, nil
}
