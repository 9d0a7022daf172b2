package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"nhl-playbyplay/internal/cache"
	"nhl-playbyplay/internal/domain/nhl"
	"nhl-playbyplay/internal/logging"
	"nhl-playbyplay/internal/pbp"
)

// Handler serves the game cache read-only.
type Handler struct {
	store  cache.Store
	logger *slog.Logger
}

// NewHandler constructs a Handler over the given cache.
func NewHandler(store cache.Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// SeasonGames is the body of the season listing route.
type SeasonGames struct {
	Season string       `json:"season"`
	Count  int          `json:"count"`
	Games  []nhl.GameID `json:"games"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the cache directory can be read.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.store == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "cache not configured", h.logger)
		return
	}
	if err := h.store.Check(); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "cache not ready", "err", err)
		writeError(w, r, nethttp.StatusServiceUnavailable, "cache unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Game returns the cached play-by-play payload verbatim.
func (h *Handler) Game(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, payload, ok := h.loadGame(w, r)
	if !ok {
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served cached game", logging.FieldGameID, id.String())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(payload); err != nil {
		logging.Error(h.logger, "failed to write response", err)
	}
}

// GameSummary returns the summary of a cached game; ?goals=N limits listed goals.
func (h *Handler) GameSummary(w nethttp.ResponseWriter, r *nethttp.Request) {
	maxGoals := pbp.DefaultGoalEvents
	if raw := r.URL.Query().Get("goals"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, nethttp.StatusBadRequest, "invalid goals parameter", h.logger)
			return
		}
		maxGoals = n
	}

	_, payload, ok := h.loadGame(w, r)
	if !ok {
		return
	}
	game, err := pbp.Decode(payload)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "cached game undecodable", err)
		writeError(w, r, nethttp.StatusInternalServerError, "cached game unreadable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, pbp.Summarize(game, maxGoals), h.logger)
}

// SeasonGames lists the cached game ids for one season.
func (h *Handler) SeasonGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, err := nhl.ParseSeason(r.PathValue("season"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
		return
	}
	ids, err := h.store.List(season)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "cache listing failed", err, logging.FieldSeason, season.String())
		writeError(w, r, nethttp.StatusInternalServerError, "cache unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, SeasonGames{Season: season.String(), Count: len(ids), Games: ids}, h.logger)
}

func (h *Handler) loadGame(w nethttp.ResponseWriter, r *nethttp.Request) (nhl.GameID, []byte, bool) {
	id, err := nhl.ParseGameID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return "", nil, false
	}
	payload, err := h.store.Read(id)
	switch {
	case err == nil:
		return id, payload, true
	case errors.Is(err, cache.ErrNotCached), errors.Is(err, cache.ErrCorrupt):
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "cache read failed", err, logging.FieldGameID, id.String())
		writeError(w, r, nethttp.StatusInternalServerError, "cache unavailable", h.logger)
	}
	return "", nil, false
}
