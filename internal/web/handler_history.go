package web

import (
	"io"
	"net/http"
	"strconv"
)

const historyLimit = 50

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	gens, err := s.history.ListRecent(r.Context(), historyLimit)
	if err != nil {
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		s.logger.Error("list history failed", "error", err)
		return
	}

	if err := s.renderPage(w, gens, "base.html", "history.html"); err != nil {
		s.logger.Error("render history failed", "error", err)
	}
}

func (s *Server) handleHistoryImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid generation id", http.StatusBadRequest)
		return
	}

	gen, err := s.history.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load generation", http.StatusInternalServerError)
		s.logger.Error("get generation failed", "id", id, "error", err)
		return
	}
	if gen == nil || gen.StorageKey == "" || s.imageStore == nil {
		http.NotFound(w, r)
		return
	}

	reader, mimeType, err := s.imageStore.Get(r.Context(), gen.StorageKey)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer closeWithLog(reader, "history image", s.logger)

	w.Header().Set("Content-Type", mimeType)
	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("write history image failed", "id", id, "error", err)
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
