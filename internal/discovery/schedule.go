package discovery

import (
	"bytes"
	"encoding/json"
	"sort"

	"nhl-playbyplay/internal/domain/nhl"
)

// idKeys are the object keys that may carry a game identifier in schedule payloads.
var idKeys = []string{"id", "gameId", "gamePk"}

// ScanScheduleIDs walks an arbitrary schedule document and returns every
// 10-digit identifier found under an id key, deduplicated and sorted.
func ScanScheduleIDs(payload []byte) ([]nhl.GameID, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	found := make(map[nhl.GameID]struct{})
	visit(doc, found)

	ids := make([]nhl.GameID, 0, len(found))
	for id := range found {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func visit(node any, found map[nhl.GameID]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for _, key := range idKeys {
			if raw, ok := v[key]; ok {
				if id, ok := candidateID(raw); ok {
					found[id] = struct{}{}
				}
			}
		}
		for _, child := range v {
			visit(child, found)
		}
	case []any:
		for _, child := range v {
			visit(child, found)
		}
	}
}

func candidateID(raw any) (nhl.GameID, bool) {
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	default:
		return "", false
	}
	if !nhl.IsGameIDShape(s) {
		return "", false
	}
	return nhl.GameID(s), true
}

// FilterByType keeps the ids whose type digits match one of types, preserving order.
func FilterByType(ids []nhl.GameID, types []nhl.GameType) []nhl.GameID {
	want := make(map[nhl.GameType]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}
	out := make([]nhl.GameID, 0, len(ids))
	for _, id := range ids {
		if _, ok := want[id.Type()]; ok {
			out = append(out, id)
		}
	}
	return out
}
