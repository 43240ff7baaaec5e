package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses: validation
// failures are the caller's fault, missing entities are 404, upstream booking
// API trouble is a bad gateway.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: ve.Error()})
		return
	}
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: nf.Error()})
		return
	}
	var ae *domain.APIError
	if errors.As(err, &ae) {
		writeJSON(w, http.StatusBadGateway, errorResponse{Message: ae.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return false
	}
	return true
}
