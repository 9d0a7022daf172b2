package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/testutil"
)

type stubSchedule struct {
	payload string
	err     error
	calls   int
}

func (s *stubSchedule) FetchSchedule(ctx context.Context, season nhl.Season) (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.payload), nil
}

func TestScanScheduleIDsVisitsNestedKeys(t *testing.T) {
	ids, err := ScanScheduleIDs([]byte(testutil.ScheduleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []nhl.GameID{"2022010005", "2022020001", "2022020002", "2022030411"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestScanScheduleIDsHandlesScalarsAndDuplicates(t *testing.T) {
	cases := map[string][]nhl.GameID{
		`42`:           {},
		`"2022020001"`: {},
		`[{"id":2022020001},{"gameId":"2022020001"}]`: {"2022020001"},
		`{"id":20220200011,"gamePk":"abcdefghij"}`:    {},
		`{"id":2.022020001e9}`:                        {},
	}
	for payload, want := range cases {
		got, err := ScanScheduleIDs([]byte(payload))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", payload, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("ids mismatch for %s (-want +got):\n%s", payload, diff)
		}
	}

	if _, err := ScanScheduleIDs([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFilterByTypeUsesTypeDigits(t *testing.T) {
	ids := []nhl.GameID{"2022010005", "2022020001", "2022030411"}
	got := FilterByType(ids, []nhl.GameType{nhl.GameTypePlayoffs})
	if diff := cmp.Diff([]nhl.GameID{"2022030411"}, got); diff != "" {
		t.Fatalf("filter mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverIDsPrefersSchedule(t *testing.T) {
	source := &stubSchedule{payload: testutil.ScheduleJSON}
	logger, buf := testutil.NewBufferLogger()
	d := NewDiscoverer(source, logger)

	got, err := d.DiscoverIDs(context.Background(), "20222023", nhl.DefaultGameTypes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Strategy != StrategySchedule {
		t.Fatalf("expected schedule strategy, got %s", got.Strategy)
	}
	want := []nhl.GameID{"2022020001", "2022020002", "2022030411"}
	if diff := cmp.Diff(want, got.IDs); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "strategy=schedule") {
		t.Fatalf("expected strategy log, got %s", buf.String())
	}
}

func TestDiscoverIDsFallsBackWhenScheduleFails(t *testing.T) {
	source := &stubSchedule{err: errors.New("boom")}
	logger, buf := testutil.NewBufferLogger()
	d := NewDiscoverer(source, logger)

	got, err := d.DiscoverIDs(context.Background(), "20192020", []nhl.GameType{nhl.GameTypeRegular})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Strategy != StrategyFallback {
		t.Fatalf("expected fallback strategy, got %s", got.Strategy)
	}
	if len(got.IDs) != 1300 {
		t.Fatalf("expected 1300 ids, got %d", len(got.IDs))
	}
	if got.IDs[0] != "2019020001" || got.IDs[1299] != "2019021300" {
		t.Fatalf("unexpected range bounds %s..%s", got.IDs[0], got.IDs[1299])
	}
	if !strings.Contains(buf.String(), "strategy=fallback") {
		t.Fatalf("expected strategy log, got %s", buf.String())
	}
}

func TestDiscoverIDsFallsBackWhenScheduleHasNoMatchingTypes(t *testing.T) {
	source := &stubSchedule{payload: `{"games":[{"id":2021010001}]}`}
	d := NewDiscoverer(source, nil)

	got, err := d.DiscoverIDs(context.Background(), "20212022", []nhl.GameType{nhl.GameTypePlayoffs, nhl.GameTypeRegular})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Strategy != StrategyFallback {
		t.Fatalf("expected fallback strategy, got %s", got.Strategy)
	}
	if len(got.IDs) != 400+1275 {
		t.Fatalf("expected 1675 ids, got %d", len(got.IDs))
	}
	if got.IDs[0] != "2021030001" || got.IDs[400] != "2021020001" {
		t.Fatalf("expected request order playoffs then regular, got %s / %s", got.IDs[0], got.IDs[400])
	}
}

func TestDiscoverIDsSkipsTypesWithoutRange(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	d := NewDiscoverer(nil, logger)

	got, err := d.DiscoverIDs(context.Background(), "20222023", []nhl.GameType{nhl.GameTypeAllStar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.IDs) != 0 {
		t.Fatalf("expected no ids, got %d", len(got.IDs))
	}
	if !strings.Contains(buf.String(), "no fallback range") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}

func TestDiscoverIDsRejectsBadInput(t *testing.T) {
	d := NewDiscoverer(nil, nil)
	if _, err := d.DiscoverIDs(context.Background(), "20192021", nhl.DefaultGameTypes); !errors.Is(err, nhl.ErrInvalidSeason) {
		t.Fatalf("expected invalid season, got %v", err)
	}
	if _, err := d.DiscoverIDs(context.Background(), "20192020", nil); !errors.Is(err, ErrNoGameTypes) {
		t.Fatalf("expected ErrNoGameTypes, got %v", err)
	}
}
