package tournaments

import (
	"errors"
	"fmt"

	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/tournaments"
	"worldcup-stats-service/internal/geo"
	"worldcup-stats-service/internal/store"
)

// ErrTournamentNotFound is returned for years without a played edition.
var ErrTournamentNotFound = errors.New("tournament not found")

// Store defines the contract for retrieving tournaments and map countries.
type Store interface {
	Ready() bool
	ListTournaments() []tournaments.Tournament
	GetTournament(year int) (tournaments.Tournament, bool)
	ListCountries() []geo.Country
}

// Service coordinates the bar chart, info panel and map using a Store.
type Service struct {
	store Store
	frame chart.Frame
	proj  geo.ConicConformal
}

// NewService constructs a Service drawing charts into frame.
func NewService(store Store, frame chart.Frame) *Service {
	return &Service{store: store, frame: frame, proj: geo.DefaultProjection()}
}

// Tournaments returns every edition ordered by year.
func (s *Service) Tournaments() ([]tournaments.Tournament, error) {
	if !s.store.Ready() {
		return nil, store.ErrNotLoaded
	}
	return s.store.ListTournaments(), nil
}

// Info returns the summary panel for year.
func (s *Service) Info(year int) (tournaments.Info, error) {
	t, err := s.tournament(year)
	if err != nil {
		return tournaments.Info{}, err
	}
	return t.Info(), nil
}

// Chart lays out the bar chart for dim. A non-zero selectedYear must name an edition.
func (s *Service) Chart(dim tournaments.Dimension, selectedYear int) (chart.Chart, error) {
	if selectedYear != 0 {
		if _, err := s.tournament(selectedYear); err != nil {
			return chart.Chart{}, err
		}
	}
	list, err := s.Tournaments()
	if err != nil {
		return chart.Chart{}, err
	}
	return chart.BarChart(list, dim, s.frame, selectedYear)
}

// Map classifies countries and places the medal markers for year.
func (s *Service) Map(year int) (geo.Map, error) {
	t, err := s.tournament(year)
	if err != nil {
		return geo.Map{}, err
	}
	return geo.Build(t, s.store.ListCountries(), s.proj), nil
}

func (s *Service) tournament(year int) (tournaments.Tournament, error) {
	if !s.store.Ready() {
		return tournaments.Tournament{}, store.ErrNotLoaded
	}
	t, ok := s.store.GetTournament(year)
	if !ok {
		return tournaments.Tournament{}, fmt.Errorf("%w: %d", ErrTournamentNotFound, year)
	}
	return t, nil
}
