package http

import (
	nethttp "net/http"

	"nhl-playbyplay/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("GET /games/{id}", handler.Game)
	mux.HandleFunc("GET /games/{id}/summary", handler.GameSummary)
	mux.HandleFunc("GET /seasons/{season}/games", handler.SeasonGames)
	return mux
}
