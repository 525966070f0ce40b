package server

import (
	"net/http"

	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/nta/autocomplete"
	"github.com/teranos/TALS/version"
)

// HandleWebSocket upgrades the connection and starts the client pumps
func (s *TALSServer) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := s.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("Failed to upgrade WebSocket connection", "error", err)
		return
	}

	client := newClient(s, conn)
	s.register <- client

	go client.writePump()
	go client.readPump()
}

// HandleHealth serves the health check endpoint with version info
func (s *TALSServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	versionInfo := version.Get()

	doc := s.repo.Document()
	templates := 0
	if doc != nil {
		templates = len(doc.Templates)
	}

	health := map[string]interface{}{
		"status":       "ok",
		"version":      versionInfo.Version,
		"commit":       versionInfo.CommitHash,
		"build_time":   versionInfo.BuildTime,
		"clients":      s.clientCount(),
		"model_loaded": doc != nil,
		"templates":    templates,
	}

	writeJSON(w, http.StatusOK, health)
}

// HandleAutocomplete resolves one completion request over plain HTTP.
// Mirrors the WebSocket "autocomplete" command for scripting and editors
// without a persistent connection.
func (s *TALSServer) HandleAutocomplete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req autocomplete.Request
	if err := readJSON(w, r, &req); err != nil {
		return
	}

	items, err := s.resolver.Complete(req)
	if err != nil {
		switch {
		case errors.IsInvalidRequestError(err):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errors.ErrServiceUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			s.logger.Errorw("Completion request failed", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, CompletionResultMessage{
		Type:  "autocomplete_result",
		Items: items,
	})
}
