package server

import (
	"context"

	"worldcup-stats-service/internal/config"
	"worldcup-stats-service/internal/poller"
	"worldcup-stats-service/internal/providers"
	"worldcup-stats-service/internal/store"
)

// Poller abstracts the dataset refresh loop so tests can inject fakes.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// storeSink lays out the bracket and swaps the loaded dataset into the store.
type storeSink struct {
	store *store.MemoryStore
	view  config.ViewConfig
}

func (s storeSink) Replace(ds providers.Dataset) error {
	width, height := bracketBox(s.view)
	return s.store.Load(ds, width, height)
}

func bracketBox(view config.ViewConfig) (float64, float64) {
	def := config.Defaults().Bracket
	width, height := float64(def.Width), float64(def.Height)
	if view.Width > 0 {
		width = float64(view.Width)
	}
	if view.Height > 0 {
		height = float64(view.Height)
	}
	return width, height
}
