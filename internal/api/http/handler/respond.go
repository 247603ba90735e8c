package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps a domain error to an HTTP status. Unknown errors become
// an opaque 500; the caller is expected to have logged the original.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, model.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, model.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "email already registered"})
	case errors.Is(err, model.ErrUploadFailed):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "upload failed"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func handleError(w http.ResponseWriter, l *logger.Logger, op string, err error) {
	l.Error(op, "error", err.Error())
	writeError(w, err)
}
