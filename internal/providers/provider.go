package providers

import "context"

// Dataset file names as published alongside the visualisations.
const (
	FileTournaments = "fifa-world-cup.csv"
	FileMatches     = "fifa-matches.json"
	FileBracket     = "fifa-tree.csv"
	FileCountries   = "countries.json"
)

// Files lists every dataset a Source must serve.
func Files() []string {
	return []string{FileTournaments, FileMatches, FileBracket, FileCountries}
}

// Source fetches raw dataset bytes by file name.
type Source interface {
	Open(ctx context.Context, name string) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, name string) ([]byte, error)

func (f SourceFunc) Open(ctx context.Context, name string) ([]byte, error) { return f(ctx, name) }
