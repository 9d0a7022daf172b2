package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nhl-playbyplay/internal/domain/nhl"
)

// Init creates the cache root. Failure here is a configuration error.
func (s *FSStore) Init() error {
	if s == nil || s.root == "" {
		return errors.New("cache root not configured")
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create cache dir %s: %w", s.root, err)
	}
	return nil
}

// Write stores payload for id verbatim. The file appears all at once via a
// temp file and rename, so readers never observe a partial entry.
func (s *FSStore) Write(id nhl.GameID, payload []byte) error {
	if s == nil {
		return errors.New("cache store not configured")
	}
	if len(payload) == 0 {
		return fmt.Errorf("cache write %s: empty payload", id)
	}

	target := s.Path(id)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("cache write %s: %w", id, err)
	}

	tmp := target + tmpSuffix
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache write %s: %w", id, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cache write %s: %w", id, err)
	}
	return nil
}
