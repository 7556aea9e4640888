package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/planfit/planfit/internal/errors"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	app.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: true, Message: message})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusNotFound, errorBody{Error: true, Message: "resource not found"})
}

func (app *application) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusMethodNotAllowed, errorBody{Error: true, Message: "method not allowed"})
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: true, Message: "internal server error"})
}

// decodeJSON reads the request body into dst. On failure it sends the 400
// response itself and returns false.
func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.badRequest(w, r, fmt.Sprintf("invalid JSON body: %v", err))
		return false
	}
	return true
}

// parseDate parses an ISO date, accepting a bare date or a full timestamp.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("date should be in ISO format (YYYY-MM-DD): %q", value)
}
