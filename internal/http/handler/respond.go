package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"wave/internal/group"
	"wave/internal/message"
	"wave/internal/poll"
	"wave/internal/user"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON parses the body into dst and runs struct validation.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("bad json")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New("invalid field: " + verrs[0].Field())
		}
		return errors.New("invalid request")
	}
	return nil
}

// writeServiceError maps domain errors onto the HTTP taxonomy. Anything
// unrecognized is a store or internal fault and surfaces as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, group.ErrNotMember):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, message.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, poll.ErrBadOption):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, group.ErrNotFound),
		errors.Is(err, message.ErrNotFound),
		errors.Is(err, poll.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
	}
}
