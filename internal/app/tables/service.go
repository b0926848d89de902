package tables

import (
	"context"
	"errors"
	"log/slog"

	"worldcup-stats-service/internal/bracket"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/logging"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/resultlist"
	"worldcup-stats-service/internal/store"
)

// DatasetStore defines the contract for reading the team results and bracket.
type DatasetStore interface {
	Ready() bool
	ListTeams() []results.TeamRecord
	Bracket() (*bracket.Tree, bracket.Layout, error)
}

// SessionStore defines the contract for creating and finding table sessions.
type SessionStore interface {
	Create(teams []results.TeamRecord) (*store.Session, error)
	Get(id string) (*store.Session, error)
}

// View is a session's rendered table.
type View struct {
	SessionID string    `json:"sessionId"`
	Rows      []RowView `json:"rows"`
}

// HighlightView is the bracket highlight for a hovered row.
type HighlightView struct {
	Selection resultlist.Selection `json:"selection"`
	bracket.Highlight
}

// Service coordinates expandable result tables and the bracket they link to.
type Service struct {
	data     DatasetStore
	sessions SessionStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(data DatasetStore, sessions SessionStore, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{data: data, sessions: sessions, logger: logger, metrics: recorder}
}

// Teams renders the collapsed table without opening a session.
func (s *Service) Teams() ([]RowView, error) {
	teams, err := s.loadedTeams()
	if err != nil {
		return nil, err
	}
	rows := make([]resultlist.Row, len(teams))
	for i, t := range teams {
		rows[i] = resultlist.AggregateRow{Record: t}
	}
	return Render(rows, chart.GoalScale(teams)), nil
}

// Open starts a new collapsed session. Sessions keep the teams they were
// opened over, so none is opened before the first load.
func (s *Service) Open(ctx context.Context) (View, error) {
	teams, err := s.loadedTeams()
	if err != nil {
		return View{}, err
	}
	sess, err := s.sessions.Create(teams)
	if err != nil {
		return View{}, err
	}
	logging.Info(logging.FromContext(ctx, s.logger), "table session opened", logging.FieldSession, sess.ID)
	return s.view(sess)
}

// Get renders an existing session.
func (s *Service) Get(id string) (View, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return View{}, err
	}
	return s.view(sess)
}

// Toggle expands or collapses the team at row and returns the re-rendered table.
func (s *Service) Toggle(ctx context.Context, id string, row int) (View, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return View{}, err
	}

	var v View
	err = sess.Do(func(m *resultlist.Manager) error {
		if err := m.Toggle(row); err != nil {
			return err
		}
		v = render(id, m)
		return nil
	})
	s.metrics.RecordTableAction(metrics.ActionToggle, outcome(err))
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "table toggle rejected",
			logging.FieldSession, id, logging.FieldRow, row, logging.FieldError, err)
		return View{}, err
	}
	return v, nil
}

// Reset collapses every team in the session.
func (s *Service) Reset(ctx context.Context, id string) (View, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return View{}, err
	}

	var v View
	_ = sess.Do(func(m *resultlist.Manager) error {
		m.Reset()
		v = render(id, m)
		return nil
	})
	s.metrics.RecordTableAction(metrics.ActionReset, metrics.OutcomeOK)
	logging.Info(logging.FromContext(ctx, s.logger), "table reset", logging.FieldSession, id)
	return v, nil
}

// Highlight reports what the bracket lights up while row is hovered. The table is not changed.
func (s *Service) Highlight(id string, row int) (HighlightView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return HighlightView{}, err
	}

	var sel resultlist.Selection
	err = sess.Do(func(m *resultlist.Manager) error {
		var err error
		sel, err = m.Selection(row)
		return err
	})
	if err != nil {
		return HighlightView{}, err
	}

	tree, _, err := s.data.Bracket()
	if err != nil {
		return HighlightView{}, err
	}
	return HighlightView{Selection: sel, Highlight: tree.Highlight(sel)}, nil
}

// Bracket returns the laid-out knockout tree.
func (s *Service) Bracket() (bracket.Layout, error) {
	_, layout, err := s.data.Bracket()
	return layout, err
}

func (s *Service) view(sess *store.Session) (View, error) {
	var v View
	_ = sess.Do(func(m *resultlist.Manager) error {
		v = render(sess.ID, m)
		return nil
	})
	return v, nil
}

func (s *Service) loadedTeams() ([]results.TeamRecord, error) {
	if !s.data.Ready() {
		return nil, store.ErrNotLoaded
	}
	return s.data.ListTeams(), nil
}

// render draws the session's rows on the goal scale of the teams it was opened over.
func render(id string, m *resultlist.Manager) View {
	return View{SessionID: id, Rows: Render(m.Rows(), chart.GoalScale(m.Teams()))}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, resultlist.ErrInvalidArgument):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
