package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"nhl-playbyplay/internal/domain/nhl"
)

func TestPathIsPureFunctionOfID(t *testing.T) {
	s := NewFSStore("/data/raw")
	if got := s.Path("2022030411"); got != filepath.Join("/data/raw", "game_2022030411.json") {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestReadMissingReturnsErrNotCached(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if _, err := s.Read("2022030411"); !errors.Is(err, ErrNotCached) {
		t.Fatalf("expected ErrNotCached, got %v", err)
	}
	if s.Exists("2022030411") {
		t.Fatal("expected missing entry")
	}
}

func TestReadCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(dir)
	for id, body := range map[nhl.GameID]string{
		"2022020001": "",
		"2022020002": `{"id": 2022020002`,
	} {
		if err := os.WriteFile(s.Path(id), []byte(body), 0o644); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := s.Read(id); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("expected ErrCorrupt for %s, got %v", id, err)
		}
		if s.Exists(id) {
			t.Fatalf("corrupt entry %s must not count as cached", id)
		}
	}
}

func TestWriteThenReadIsVerbatim(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "nested", "raw"))
	payload := []byte("{\n  \"id\": 2022030411,\n  \"plays\": []\n}")

	if err := s.Write("2022030411", payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := s.Read("2022030411")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("expected verbatim bytes, got %s", got)
	}
	if _, err := os.Stat(s.Path("2022030411") + tmpSuffix); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, got %v", err)
	}
}

func TestWriteRejectsEmptyPayload(t *testing.T) {
	s := NewFSStore(t.TempDir())
	if err := s.Write("2022030411", nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestWriteFailsWhenRootIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewFSStore(file)
	if err := s.Write("2022030411", []byte("{}")); err == nil {
		t.Fatal("expected write failure")
	}
	if err := s.Init(); err == nil {
		t.Fatal("expected init failure")
	}
}

func TestInitCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")
	s := NewFSStore(root)
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		t.Fatalf("expected root dir, got %v", err)
	}
	if err := NewFSStore("").Init(); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestListFiltersBySeasonAndIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(dir)
	for _, id := range []nhl.GameID{"2022030411", "2022020001", "2021020005"} {
		if err := s.Write(id, []byte(`{}`)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	for _, name := range []string{"game_2022020002.json.tmp", "notes.txt", "game_bad.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "game_2022020003.json"), 0o755); err != nil {
		t.Fatalf("seed dir: %v", err)
	}

	got, err := s.List("20222023")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]nhl.GameID{"2022020001", "2022030411"}, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	all, err := s.Entries("")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(all) != 3 || all[0].ID != "2021020005" || all[0].Size != 2 {
		t.Fatalf("unexpected entries %+v", all)
	}
}

func TestListMissingRootIsEmpty(t *testing.T) {
	s := NewFSStore(filepath.Join(t.TempDir(), "missing"))
	got, err := s.List("")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v %v", got, err)
	}
}

func TestCheckReportsRootState(t *testing.T) {
	dir := t.TempDir()
	if err := NewFSStore(dir).Check(); err != nil {
		t.Fatalf("expected empty dir to be ready: %v", err)
	}
	if err := NewFSStore(filepath.Join(dir, "missing")).Check(); err == nil {
		t.Fatal("expected missing root to fail")
	}
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := NewFSStore(file).Check(); err == nil {
		t.Fatal("expected file root to fail")
	}
}
