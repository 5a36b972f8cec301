package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/unspoken/internal/common"
)

// RespondJSON writes payload as a JSON body with the given status.
func (h *Handler) RespondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error(r.Context(), "failed to encode response", "error", err)
	}
}

// RespondError writes {"error": message}.
func (h *Handler) RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.RespondJSON(w, r, status, map[string]string{"error": message})
}

// statusFor maps core errors to HTTP statuses. Storage details never leave
// the server.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, "Please enter a message."
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}
