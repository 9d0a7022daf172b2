package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"nhl-playbyplay/internal/domain/nhl"
)

var (
	// ErrNotCached means no cache file exists for the id.
	ErrNotCached = errors.New("cache: game not cached")
	// ErrCorrupt means the cache file is empty or not valid JSON.
	ErrCorrupt = errors.New("cache: corrupt entry")
)

// Store is the read side of the game cache.
type Store interface {
	Exists(id nhl.GameID) bool
	Read(id nhl.GameID) (json.RawMessage, error)
	List(season nhl.Season) ([]nhl.GameID, error)
	Check() error
}

// Entry describes one cached game file.
type Entry struct {
	ID   nhl.GameID
	Size int64
}

// FSStore keeps one JSON file per game under a root directory.
type FSStore struct {
	root string
}

// NewFSStore constructs a store rooted at root.
func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

// Root exposes the cache directory.
func (s *FSStore) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// Check verifies the cache root exists and can be listed.
func (s *FSStore) Check() error {
	if s == nil || s.root == "" {
		return errors.New("cache root not configured")
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("cache root %s is not a directory", s.root)
	}
	f, err := os.Open(s.root)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Path returns where id is (or would be) cached.
func (s *FSStore) Path(id nhl.GameID) string {
	return GamePath(s.root, id)
}

// Exists reports whether id has a readable, valid cache entry.
func (s *FSStore) Exists(id nhl.GameID) bool {
	_, err := s.Read(id)
	return err == nil
}

// Read returns the cached payload for id.
func (s *FSStore) Read(id nhl.GameID) (json.RawMessage, error) {
	if s == nil {
		return nil, errors.New("cache store not configured")
	}
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotCached, id)
		}
		return nil, err
	}
	if len(data) == 0 || !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, id)
	}
	return json.RawMessage(data), nil
}

// List returns cached ids for season in ascending order; an empty season lists everything.
func (s *FSStore) List(season nhl.Season) ([]nhl.GameID, error) {
	entries, err := s.Entries(season)
	if err != nil {
		return nil, err
	}
	ids := make([]nhl.GameID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids, nil
}

// Entries is List with file sizes.
func (s *FSStore) Entries(season nhl.Season) ([]Entry, error) {
	if s == nil {
		return nil, errors.New("cache store not configured")
	}
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}

	out := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		id, ok := idFromFileName(e.Name())
		if !ok {
			continue
		}
		if season != "" && id.Season() != season {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{ID: id, Size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
