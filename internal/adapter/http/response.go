package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adsight/internal/core/port"
	"adsight/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Message: msg})
}

// decodeJSON reads the request body into dst. It writes a 400 and returns
// false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// writeError maps use case errors to status codes. Anything unexpected is
// logged and collapsed into a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request", Errors: verr.Fields})
	case errors.Is(err, port.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, port.ErrInvalidStatus):
		writeMessage(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, port.ErrInvalidTransition):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, port.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, port.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, port.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
