package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vovakirdan/folio-arcade/internal/contact"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

type gameInfo struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	TickMs int64  `json:"tick_ms"` // 0 for input-driven games
}

type scoresResponse struct {
	Game   string               `json:"game"`
	Stats  storage.GameStats    `json:"stats"`
	Scores []storage.ScoreEntry `json:"scores"`
}

type contactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	list := registry.List()
	out := make([]gameInfo, 0, len(list))
	for _, info := range list {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		g.Reset(s.runtime)
		out = append(out, gameInfo{
			ID:     info.ID,
			Title:  info.Title,
			TickMs: g.TickInterval().Milliseconds(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	game := r.PathValue("game")
	if !registry.Exists(game) {
		http.Error(w, "unknown game", http.StatusNotFound)
		return
	}
	if s.store == nil {
		http.Error(w, "scores unavailable", http.StatusServiceUnavailable)
		return
	}

	limit := storage.DefaultTopLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			http.Error(w, "limit must be between 1 and 100", http.StatusBadRequest)
			return
		}
		limit = n
	}

	stats, err := s.store.Stats(r.Context(), game)
	if err != nil {
		s.logger.Error("scores query failed", "game", game, "error", err)
		http.Error(w, "scores unavailable", http.StatusInternalServerError)
		return
	}
	scores, err := s.store.TopScores(r.Context(), game, limit)
	if err != nil {
		s.logger.Error("scores query failed", "game", game, "error", err)
		http.Error(w, "scores unavailable", http.StatusInternalServerError)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}

	writeJSON(w, http.StatusOK, scoresResponse{Game: game, Stats: stats, Scores: scores})
}

// handleCatFact always answers 200; failures yield the fallback fact.
func (s *Server) handleCatFact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"fact": s.facts.Fetch(r.Context())})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&form); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	err := s.contact.Submit(r.Context(), form)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, contactResponse{OK: true, Message: contact.MsgSent})
	case errors.Is(err, contact.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, contactResponse{Message: contact.MsgNotConfigured})
	case errors.Is(err, contact.ErrInvalidForm):
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusBadGateway, contactResponse{Message: contact.MsgFailed})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
