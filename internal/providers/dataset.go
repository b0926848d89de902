package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/geo"
	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/metrics"
)

// Dataset is everything the visualisations read, decoded once at load.
type Dataset struct {
	Tournaments []tournaments.Tournament
	Teams       []results.TeamRecord
	Bracket     []bracket.Entry
	Countries   []geo.Country
}

// DatasetProvider fetches and decodes each dataset from a Source.
type DatasetProvider struct {
	source  Source
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewDatasetProvider builds a provider over source. name labels logs and metrics.
func NewDatasetProvider(source Source, name string, logger *slog.Logger, recorder *metrics.Recorder) *DatasetProvider {
	return &DatasetProvider{source: source, name: name, logger: logger, metrics: recorder}
}

// Name reports the label used in logs and metrics.
func (p *DatasetProvider) Name() string { return p.name }

// FetchTournaments returns every edition from fifa-world-cup.csv.
func (p *DatasetProvider) FetchTournaments(ctx context.Context) ([]tournaments.Tournament, error) {
	data, err := p.source.Open(ctx, FileTournaments)
	if err != nil {
		return nil, err
	}
	return DecodeTournaments(data)
}

// FetchTeamResults returns the aggregate records from fifa-matches.json in file order.
func (p *DatasetProvider) FetchTeamResults(ctx context.Context) ([]results.TeamRecord, error) {
	data, err := p.source.Open(ctx, FileMatches)
	if err != nil {
		return nil, err
	}
	return DecodeTeamResults(data)
}

// FetchBracket returns the knockout rows from fifa-tree.csv.
func (p *DatasetProvider) FetchBracket(ctx context.Context) ([]bracket.Entry, error) {
	data, err := p.source.Open(ctx, FileBracket)
	if err != nil {
		return nil, err
	}
	return DecodeBracket(data)
}

// FetchCountries returns the map country list from countries.json.
func (p *DatasetProvider) FetchCountries(ctx context.Context) ([]geo.Country, error) {
	data, err := p.source.Open(ctx, FileCountries)
	if err != nil {
		return nil, err
	}
	return DecodeCountries(data)
}

// Load fetches all four datasets concurrently. The first failure cancels the rest.
func (p *DatasetProvider) Load(ctx context.Context) (Dataset, error) {
	start := time.Now()
	var ds Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.Tournaments, err = p.FetchTournaments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Teams, err = p.FetchTeamResults(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Bracket, err = p.FetchBracket(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Countries, err = p.FetchCountries(gctx)
		return err
	})

	err := g.Wait()
	p.metrics.RecordDatasetLoad(p.name, time.Since(start), err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelError, p.name, "dataset load failed", logging.FieldError, err)
		return Dataset{}, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "dataset loaded",
		"tournaments", len(ds.Tournaments),
		"teams", len(ds.Teams),
		"bracket_rows", len(ds.Bracket),
		"countries", len(ds.Countries),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return ds, nil
}
