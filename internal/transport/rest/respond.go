package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// errorMessages holds the client-facing text for the error classes a
// handler can hit. Empty fields fall back to generic messages.
type errorMessages struct {
	NotFound string
	Conflict string
	Internal string
}

type messageResponse struct {
	Message string `json:"message"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Message string               `json:"message"`
	Errors  []fieldErrorResponse `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// decodeJSON reads a single JSON value from the request body into dst.
// An empty body is reported as io.EOF.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}

// decodeOptionalJSON is decodeJSON that treats an empty body as no input.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := decodeJSON(w, r, dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeBadBody(w http.ResponseWriter) {
	writeMessage(w, http.StatusBadRequest, "Invalid request body")
}

// handleError maps service errors onto HTTP responses. Unclassified errors
// are logged and answered with msgs.Internal.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msgs errorMessages) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := validationResponse{Message: "Validation failed", Errors: make([]fieldErrorResponse, 0, len(verr.Errors))}
		for _, fe := range verr.Errors {
			resp.Errors = append(resp.Errors, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, orDefault(msgs.NotFound, "Not found"))
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusConflict, orDefault(msgs.Conflict, "Already exists"))
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeMessage(w, http.StatusInternalServerError, orDefault(msgs.Internal, "Internal server error"))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
