package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldcup-stats-service/internal/config"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/store"
	"worldcup-stats-service/internal/tui"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRootRegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd("test")
	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"serve", "table", "chart", "map", "bracket"})
	assert.Equal(t, "test", cmd.Version)
}

func TestTablePlainCollapsed(t *testing.T) {
	out, err := execute(t, "table", "--plain")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 9)
	assert.True(t, strings.HasPrefix(got[1], "+ Germany"))
}

func TestTablePlainExpand(t *testing.T) {
	out, err := execute(t, "table", "--plain", "--expand", "Germany")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 16)
	assert.True(t, strings.HasPrefix(got[1], "- Germany"))
	assert.True(t, strings.HasPrefix(got[2], "    x"))
}

func TestTableRequiresTerminal(t *testing.T) {
	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func(*os.File) bool { return false }

	_, err := execute(t, "table")
	assert.ErrorIs(t, err, errNoTerminal)
}

func TestTableRunsInteractiveModel(t *testing.T) {
	origTerm, origRun := isTerminal, runProgram
	defer func() { isTerminal, runProgram = origTerm, origRun }()
	isTerminal = func(*os.File) bool { return true }

	var got tea.Model
	runProgram = func(m tea.Model, _ ...tea.ProgramOption) error {
		got = m
		return nil
	}

	_, err := execute(t, "table")
	require.NoError(t, err)
	model, ok := got.(tui.TableModel)
	require.True(t, ok)
	assert.Len(t, model.Rows(), 8)
}

func TestTableReportsProgramFailure(t *testing.T) {
	origTerm, origRun := isTerminal, runProgram
	defer func() { isTerminal, runProgram = origTerm, origRun }()
	isTerminal = func(*os.File) bool { return true }
	runProgram = func(tea.Model, ...tea.ProgramOption) error { return errors.New("tty gone") }

	_, err := execute(t, "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestChartMarksSelectedYear(t *testing.T) {
	out, err := execute(t, "chart", "--dimension", "attendance", "--selected", "2014")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 8)
	assert.Equal(t, "attendance (max 53,592)", got[0])
	assert.True(t, strings.HasPrefix(got[7], "* 2014"))
	assert.True(t, strings.HasSuffix(got[7], "53,592"))
	assert.True(t, strings.HasPrefix(got[1], "  1930"))
}

func TestChartRejectsUnknownDimension(t *testing.T) {
	_, err := execute(t, "chart", "--dimension", "corners")
	assert.Error(t, err)
}

func TestChartRejectsUnknownSelectedYear(t *testing.T) {
	_, err := execute(t, "chart", "--selected", "1942")
	assert.Error(t, err)
}

func TestMapDefaultsToLatestYear(t *testing.T) {
	out, err := execute(t, "map")
	require.NoError(t, err)

	assert.Contains(t, out, "2014 FIFA World Cup Brazil")
	assert.Contains(t, out, "host: Brazil  winner: Germany  runner-up: Argentina")
	assert.Contains(t, out, "Germany")
}

func TestMapUnknownYear(t *testing.T) {
	_, err := execute(t, "map", "--year", "1942")
	assert.Error(t, err)
}

func TestBracketStarsTeamGames(t *testing.T) {
	out, err := execute(t, "bracket", "--team", "Germany")
	require.NoError(t, err)

	got := lines(out)
	assert.Equal(t, "* Germany vs Argentina  1-0", got[0])
	assert.Equal(t, 4, strings.Count(out, "* "), "Germany won four knockout games")
}

func TestBracketWithoutTeam(t *testing.T) {
	out, err := execute(t, "bracket")
	require.NoError(t, err)
	assert.NotContains(t, out, "*")
	assert.Contains(t, out, "    Germany vs France")
}

func TestUnknownProviderFlag(t *testing.T) {
	_, err := execute(t, "map", "--provider", "ftp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp")
}

func TestLoadFailureSurfaces(t *testing.T) {
	orig := loadStore
	defer func() { loadStore = orig }()
	loadStore = func(context.Context, config.Config, *slog.Logger, *metrics.Recorder) (*store.MemoryStore, error) {
		return nil, errors.New("dataset offline")
	}

	_, err := execute(t, "bracket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset offline")
}

func TestServeRejectsBadProvider(t *testing.T) {
	_, err := execute(t, "serve", "--provider", "http")
	assert.Error(t, err)
}
