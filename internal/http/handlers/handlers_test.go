package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/pbp"
	"nhl-playbyplay/internal/testutil"
)

func seededStore(t *testing.T) *cache.FSStore {
	t.Helper()
	store := cache.NewFSStore(t.TempDir())
	if err := store.Write("2022030411", []byte(testutil.PlayByPlayJSON)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Write("2022020001", []byte(`{"id":2022020001}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Write("2021020001", []byte(`{"id":2021020001}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func serveWithPath(h http.HandlerFunc, target string, values map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range values {
		req.SetPathValue(k, v)
	}
	return testutil.ServeRequest(h, req)
}

func TestHealth(t *testing.T) {
	h := NewHandler(nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReadyReflectsCacheDir(t *testing.T) {
	h := NewHandler(seededStore(t), nil)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil), http.StatusOK)

	logger, _ := testutil.NewBufferLogger()
	missing := NewHandler(cache.NewFSStore(filepath.Join(t.TempDir(), "missing")), logger)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(missing.Ready), http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)

	unconfigured := NewHandler(nil, nil)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(unconfigured.Ready), http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)
}

func TestGameServesVerbatimPayload(t *testing.T) {
	h := NewHandler(seededStore(t), nil)

	rr := serveWithPath(h.Game, "/games/2022030411", map[string]string{"id": "2022030411"})
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.String() != testutil.PlayByPlayJSON {
		t.Fatalf("expected verbatim payload, got %s", rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %s", got)
	}
}

func TestGameErrors(t *testing.T) {
	store := seededStore(t)
	if err := os.WriteFile(store.Path("2022020002"), []byte("{"), 0o644); err != nil {
		t.Fatalf("seed corrupt: %v", err)
	}
	h := NewHandler(store, nil)

	cases := map[string]int{
		"abc":        http.StatusBadRequest,
		"202203041":  http.StatusBadRequest,
		"2022039999": http.StatusNotFound,
		"2022020002": http.StatusNotFound,
	}
	for id, want := range cases {
		rr := serveWithPath(h.Game, "/games/"+id, map[string]string{"id": id})
		if rr.Code != want {
			t.Fatalf("id %s: expected %d, got %d", id, want, rr.Code)
		}
	}
}

func TestGameSummary(t *testing.T) {
	h := NewHandler(seededStore(t), nil)

	rr := serveWithPath(h.GameSummary, "/games/2022030411/summary?goals=1", map[string]string{"id": "2022030411"})
	testutil.AssertStatus(t, rr, http.StatusOK)

	var summary pbp.GameSummary
	testutil.DecodeJSON(t, rr, &summary)
	if summary.Goals != 2 || len(summary.GoalEvents) != 1 || summary.GoalEvents[0].Scorer != "Aleksander Barkov" {
		t.Fatalf("unexpected summary %+v", summary)
	}

	bad := serveWithPath(h.GameSummary, "/games/2022030411/summary?goals=x", map[string]string{"id": "2022030411"})
	testutil.AssertStatus(t, bad, http.StatusBadRequest)
}

func TestGameSummaryUndecodablePayload(t *testing.T) {
	store := cache.NewFSStore(t.TempDir())
	if err := store.Write("2022020001", []byte(`{"plays": "not-a-list"}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	logger, _ := testutil.NewBufferLogger()
	h := NewHandler(store, logger)

	rr := serveWithPath(h.GameSummary, "/games/2022020001/summary", map[string]string{"id": "2022020001"})
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestSeasonGames(t *testing.T) {
	h := NewHandler(seededStore(t), nil)

	rr := serveWithPath(h.SeasonGames, "/seasons/2022/games", map[string]string{"season": "2022"})
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body SeasonGames
	testutil.DecodeJSON(t, rr, &body)
	if body.Season != "20222023" || body.Count != 2 || body.Games[0] != "2022020001" || body.Games[1] != "2022030411" {
		t.Fatalf("unexpected listing %+v", body)
	}

	bad := serveWithPath(h.SeasonGames, "/seasons/20222024/games", map[string]string{"season": "20222024"})
	testutil.AssertStatus(t, bad, http.StatusBadRequest)

	signed := serveWithPath(h.SeasonGames, "/seasons/+201+202/games", map[string]string{"season": "+201+202"})
	testutil.AssertStatus(t, signed, http.StatusBadRequest)
}
