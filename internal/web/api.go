package web

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/models"
	"github.com/go-chi/chi/v5"
)

type createLetterRequest struct {
	Feeling string `json:"feeling"`
	Message string `json:"message"`
}

type lettersResponse struct {
	Feeling string          `json:"feeling,omitempty"`
	Count   int             `json:"count"`
	Letters []models.Letter `json:"letters"`
}

type statsResponse struct {
	Counts []models.FeelingCount `json:"counts"`
	Total  int                   `json:"total"`
}

// RegisterAPIRoutes mounts the JSON API on r.
func (h *Handler) RegisterAPIRoutes(r chi.Router) {
	r.Post("/letters", h.apiCreateLetter)
	r.Get("/letters", h.apiListByFeeling)
	r.Get("/letters/random", h.apiRandomLetter)
	r.Post("/letters/all", h.apiListAll)
	r.Get("/feelings", h.apiFeelings)
	r.Get("/stats", h.apiStats)
	r.Get("/reminder", h.apiReminder)
}

func (h *Handler) apiCreateLetter(w http.ResponseWriter, r *http.Request) {
	var req createLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if !models.IsKnownFeeling(req.Feeling) {
		h.RespondError(w, r, http.StatusBadRequest, "unknown feeling")
		return
	}

	letter, err := h.letters.Save(r.Context(), req.Feeling, req.Message)
	if err != nil {
		h.apiError(w, r, err)
		return
	}

	h.metrics.LettersSaved.Inc()
	h.logger.Info(r.Context(), "letter saved", "id", letter.ID, "feeling", letter.Feeling)
	h.RespondJSON(w, r, http.StatusCreated, letter)
}

func (h *Handler) apiListByFeeling(w http.ResponseWriter, r *http.Request) {
	feeling := r.URL.Query().Get("feeling")
	if feeling == "" {
		h.RespondError(w, r, http.StatusBadRequest, "feeling query parameter is required")
		return
	}

	items, count, err := h.letters.ByFeeling(r.Context(), feeling)
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	h.RespondJSON(w, r, http.StatusOK, lettersResponse{Feeling: feeling, Count: count, Letters: items})
}

func (h *Handler) apiRandomLetter(w http.ResponseWriter, r *http.Request) {
	letter, err := h.letters.RandomLetter(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	if letter == nil {
		h.RespondError(w, r, http.StatusNotFound, common.ErrNoLetters.Error())
		return
	}
	h.RespondJSON(w, r, http.StatusOK, letter)
}

func (h *Handler) apiListAll(w http.ResponseWriter, r *http.Request) {
	granted := h.gate.CheckAccess(r.Header.Get(common.ViewSecretHeaderName))
	h.metrics.ObserveAccess(granted)
	if !granted {
		h.RespondError(w, r, http.StatusUnauthorized, "access denied")
		return
	}

	items, err := h.letters.ListAll(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	h.RespondJSON(w, r, http.StatusOK, lettersResponse{Count: len(items), Letters: items})
}

func (h *Handler) apiFeelings(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, r, http.StatusOK, models.Feelings)
}

func (h *Handler) apiStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.letters.FeelingCounts(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	h.RespondJSON(w, r, http.StatusOK, statsResponse{Counts: counts, Total: total})
}

func (h *Handler) apiReminder(w http.ResponseWriter, r *http.Request) {
	remind, err := h.letters.ShouldRemind(r.Context())
	if err != nil {
		h.apiError(w, r, err)
		return
	}
	h.RespondJSON(w, r, http.StatusOK, map[string]bool{"remind": remind})
}

func (h *Handler) apiError(w http.ResponseWriter, r *http.Request, err error) {
	status, text := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "api request failed", "path", r.URL.Path, "error", err)
	}
	h.RespondError(w, r, status, text)
}
