package server

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope of every non-stream route.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func (s *Server) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	s.writeJSON(w, r, http.StatusOK, Response{Success: true, Message: msg, Data: data})
}

func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, Response{Success: false, Message: msg})
}
