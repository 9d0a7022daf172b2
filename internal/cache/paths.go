package cache

import (
	"path/filepath"
	"strings"

	"nhl-playbyplay/internal/domain/nhl"
)

const (
	filePrefix = "game_"
	fileExt    = ".json"
	tmpSuffix  = ".tmp"
)

// GamePath returns the cache file for id under root.
func GamePath(root string, id nhl.GameID) string {
	return filepath.Join(root, fileName(id))
}

func fileName(id nhl.GameID) string {
	return filePrefix + id.String() + fileExt
}

// idFromFileName reverses fileName, rejecting temp files and foreign names.
func idFromFileName(name string) (nhl.GameID, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	id, err := nhl.ParseGameID(raw)
	if err != nil {
		return "", false
	}
	return id, true
}
