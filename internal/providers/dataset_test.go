package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"worldcup-stats-service/internal/metrics"
)

var sampleFiles = map[string]string{
	FileTournaments: tournamentsCSV,
	FileMatches:     `[{"key":"Germany","value":{"Goals Made":1,"Goals Conceded":0,"Wins":1,"Losses":0,"TotalGames":1,"Result":{"label":"Winner"},"type":"aggregate","games":[{"key":"Argentina","value":{"Goals Made":1,"Goals Conceded":0,"Wins":1,"Losses":0,"Result":{"label":"Winner"},"type":"game"}}]}}]`,
	FileBracket:     "Team,Opponent,Wins,Losses,Goals Made,Goals Conceded,ParentGame\nGermany,Argentina,1,0,1,0,\n",
	FileCountries:   `[{"id":"DEU","name":"Germany"}]`,
}

func mapSource(files map[string]string) Source {
	return SourceFunc(func(ctx context.Context, name string) ([]byte, error) {
		body, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return []byte(body), nil
	})
}

func TestLoadDecodesAllDatasets(t *testing.T) {
	p := NewDatasetProvider(mapSource(sampleFiles), "memory", nil, metrics.NewRecorder())

	ds, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Tournaments) != 1 || len(ds.Teams) != 1 || len(ds.Bracket) != 1 || len(ds.Countries) != 1 {
		t.Fatalf("unexpected dataset sizes %+v", ds)
	}
	if ds.Teams[0].Games[0].Opponent != "Argentina" {
		t.Fatalf("unexpected games %+v", ds.Teams[0].Games)
	}
	if p.Name() != "memory" {
		t.Fatalf("unexpected name %s", p.Name())
	}
}

func TestLoadFailsWhenAnyDatasetIsMissing(t *testing.T) {
	files := map[string]string{}
	for k, v := range sampleFiles {
		files[k] = v
	}
	delete(files, FileBracket)

	_, err := NewDatasetProvider(mapSource(files), "memory", nil, nil).Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadSurfacesDecodeErrors(t *testing.T) {
	files := map[string]string{}
	for k, v := range sampleFiles {
		files[k] = v
	}
	files[FileMatches] = "not json"

	_, err := NewDatasetProvider(mapSource(files), "memory", nil, nil).Load(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.File != FileMatches {
		t.Fatalf("expected decode error for matches, got %v", err)
	}
}
