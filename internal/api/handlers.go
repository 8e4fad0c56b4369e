package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/its-jojoo/sharebutton/internal/core"
)

type shareResponse struct {
	Success bool   `json:"success"`
	ID      int    `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type listResponse struct {
	Total int               `json:"total"`
	Items []core.SharedItem `json:"items"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	s.log.WithFields(logrus.Fields{
		"name":     s.target.Name,
		"icon":     s.target.Icon,
		"endpoint": s.target.Endpoint,
	}).Info("Configuration requested")

	writeJSON(w, s.log, http.StatusOK, s.target)
}

func (s *Server) postShare(w http.ResponseWriter, r *http.Request) {
	req, err := decodeShareRequest(r.Body)
	if err != nil {
		s.log.WithError(err).Debug("rejecting unparseable share body")
		writeJSON(w, s.log, http.StatusBadRequest, shareResponse{Error: msgInvalidBody})
		return
	}

	item, err := s.shares.Submit(r.Context(), req)
	if err != nil {
		if ve, ok := core.AsValidation(err); ok {
			writeJSON(w, s.log, http.StatusBadRequest, shareResponse{Error: ve.Message})
			return
		}
		s.log.WithError(err).Error("storing share")
		writeJSON(w, s.log, http.StatusInternalServerError, shareResponse{Error: msgInternal})
		return
	}

	writeJSON(w, s.log, http.StatusOK, shareResponse{
		Success: true,
		ID:      item.ID,
		Message: msgReceived,
	})
}

func (s *Server) listShares(w http.ResponseWriter, r *http.Request) {
	items, err := s.shares.List(r.Context())
	if err != nil {
		s.log.WithError(err).Error("listing shares")
		writeJSON(w, s.log, http.StatusInternalServerError, shareResponse{Error: msgInternal})
		return
	}
	writeJSON(w, s.log, http.StatusOK, listResponse{Total: len(items), Items: items})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.log, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: core.FormatLocal(s.now()),
	})
}

func (s *Server) notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.log, http.StatusNotFound, shareResponse{Error: "Not found"})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.log, http.StatusMethodNotAllowed, shareResponse{Error: "Method not allowed"})
}

// decodeShareRequest reads exactly one JSON object. An empty body decodes as
// {} so it fails content validation rather than parsing; anything after the
// object is a parse error.
func decodeShareRequest(body io.Reader) (core.ShareRequest, error) {
	var req core.ShareRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if err == io.EOF {
			return core.ShareRequest{}, nil
		}
		return core.ShareRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return core.ShareRequest{}, errors.New("unexpected data after JSON body")
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, log logrus.FieldLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("writing response")
	}
}
