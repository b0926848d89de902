package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"worldcup-stats-service/internal/app/tables"
	apptournaments "worldcup-stats-service/internal/app/tournaments"
	"worldcup-stats-service/internal/chart"
	"worldcup-stats-service/internal/http/handlers"
	"worldcup-stats-service/internal/store"
	"worldcup-stats-service/internal/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	tournamentSvc, tableSvc := testutil.NewServices(t)
	return NewRouter(handlers.NewHandler(tournamentSvc, tableSvc, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/tournaments", http.StatusOK},
		{http.MethodGet, "/tournaments/2014", http.StatusOK},
		{http.MethodGet, "/tournaments/1942", http.StatusNotFound},
		{http.MethodGet, "/chart?dimension=teams", http.StatusOK},
		{http.MethodGet, "/map?year=2010", http.StatusOK},
		{http.MethodGet, "/bracket", http.StatusOK},
		{http.MethodGet, "/teams", http.StatusOK},
		{http.MethodPost, "/table/sessions", http.StatusCreated},
		{http.MethodGet, "/table/sessions/unknown", http.StatusNotFound},
		{http.MethodPost, "/table/sessions/unknown/toggle?row=0", http.StatusNotFound},
		{http.MethodPost, "/table/sessions/unknown/reset", http.StatusNotFound},
		{http.MethodGet, "/table/sessions/unknown/highlight?row=0", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterSessionFlowThroughPathValues(t *testing.T) {
	router := newRouter(t)

	rr := testutil.Serve(router, http.MethodPost, "/table/sessions", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	location := rr.Header().Get("Location")

	rr = testutil.Serve(router, http.MethodPost, location+"/toggle?row=1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view struct {
		Rows []struct {
			Label string `json:"label"`
		} `json:"rows"`
	}
	testutil.DecodeJSON(t, rr, &view)
	if len(view.Rows) != 3 || view.Rows[2].Label != "xBrazil" {
		t.Fatalf("unexpected rows %+v", view.Rows)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newRouter(t), http.MethodGet, "/games/today", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	rr := testutil.Serve(newRouter(t), http.MethodDelete, "/tournaments", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterDataRoutesUnavailableBeforeLoad(t *testing.T) {
	ms := store.NewMemoryStore()
	sessions := store.NewSessionStore(4, nil)
	router := NewRouter(handlers.NewHandler(
		apptournaments.NewService(ms, chart.DefaultFrame()),
		tables.NewService(ms, sessions, nil, nil),
		nil, ms.Ready,
	))

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/ready"},
		{http.MethodGet, "/tournaments"},
		{http.MethodGet, "/tournaments/2014"},
		{http.MethodGet, "/chart?dimension=goals"},
		{http.MethodGet, "/map?year=2014"},
		{http.MethodGet, "/bracket"},
		{http.MethodGet, "/teams"},
		{http.MethodPost, "/table/sessions"},
	} {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s: expected 503 before load, got %d %s", tc.method, tc.path, rr.Code, rr.Body.String())
		}
	}
	if sessions.Len() != 0 {
		t.Fatalf("expected no session opened before load, got %d", sessions.Len())
	}

	if err := ms.Load(testutil.SampleDataset(), 400, 300); err != nil {
		t.Fatalf("load: %v", err)
	}

	rr := testutil.Serve(router, http.MethodPost, "/table/sessions", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var view tables.View
	testutil.DecodeJSON(t, rr, &view)

	rr = testutil.Serve(router, http.MethodPost, "/table/sessions/"+view.SessionID+"/toggle?row=0", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &view)
	want := len(testutil.SampleTeams()) + len(testutil.SampleTeams()[0].Games)
	if len(view.Rows) != want {
		t.Fatalf("expected %d rows after expanding the first team, got %d", want, len(view.Rows))
	}
}
