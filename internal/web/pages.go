package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/auth"
	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/models"
)

const (
	chartWidth  = 640
	chartHeight = 360
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/write", http.StatusSeeOther)
}

func (h *Handler) writeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.newPage(r, "write"))
}

func (h *Handler) writeSubmit(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "write")

	if err := r.ParseForm(); err != nil {
		data.Notice = &notice{Kind: "error", Text: "Could not read the form."}
		h.render(w, r, http.StatusBadRequest, data)
		return
	}

	feeling := r.PostFormValue("feeling")
	message := r.PostFormValue("message")
	data.Draft = message

	if !models.IsKnownFeeling(feeling) {
		data.Notice = &notice{Kind: "warning", Text: "Please select a feeling."}
		h.render(w, r, http.StatusBadRequest, data)
		return
	}
	data.Selected = feeling

	letter, err := h.letters.Save(r.Context(), feeling, message)
	if err != nil {
		status, text := statusFor(err)
		kind := "warning"
		if status >= http.StatusInternalServerError {
			kind = "error"
			h.logger.Error(r.Context(), "save letter", "error", err)
		}
		data.Notice = &notice{Kind: kind, Text: text}
		h.render(w, r, status, data)
		return
	}

	h.metrics.LettersSaved.Inc()
	h.logger.Info(r.Context(), "letter saved", "id", letter.ID, "feeling", letter.Feeling)

	// the save moved the reminder state
	data = h.newPage(r, "write")
	data.Selected = feeling
	data.Notice = &notice{Kind: "success", Text: "Your letter has been saved."}
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "search")

	feeling := r.URL.Query().Get("feeling")
	if feeling == "" {
		feeling = models.FeelingLove
	}
	if !models.IsKnownFeeling(feeling) {
		data.Notice = &notice{Kind: "warning", Text: "Unknown feeling."}
		h.render(w, r, http.StatusBadRequest, data)
		return
	}
	data.Selected = feeling

	items, count, err := h.letters.ByFeeling(r.Context(), feeling)
	if err != nil {
		h.pageError(w, r, data, err)
		return
	}
	data.Letters, data.Count = items, count
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "timeline")

	counts, err := h.letters.FeelingCounts(r.Context())
	if err != nil {
		h.pageError(w, r, data, err)
		return
	}
	data.Chart = BuildChart(counts, chartWidth, chartHeight)
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) random(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "random")

	letter, err := h.letters.RandomLetter(r.Context())
	if err != nil {
		h.pageError(w, r, data, err)
		return
	}
	data.Letter = letter
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) lettersForm(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "letters")

	if !h.hasViewPass(r) {
		h.render(w, r, http.StatusOK, data)
		return
	}
	h.renderAll(w, r, data)
}

func (h *Handler) lettersSubmit(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "letters")

	if err := r.ParseForm(); err != nil {
		data.Notice = &notice{Kind: "error", Text: "Could not read the form."}
		h.render(w, r, http.StatusBadRequest, data)
		return
	}

	password := r.PostFormValue("password")
	if password == "" {
		h.render(w, r, http.StatusOK, data)
		return
	}

	granted := h.gate.CheckAccess(password)
	h.metrics.ObserveAccess(granted)
	if !granted {
		h.logger.Warn(r.Context(), "access denied")
		data.Notice = &notice{Kind: "error", Text: "Incorrect password."}
		h.render(w, r, http.StatusUnauthorized, data)
		return
	}

	h.issueViewPass(w, r)
	data.Notice = &notice{Kind: "success", Text: "Access granted."}
	h.renderAll(w, r, data)
}

func (h *Handler) renderAll(w http.ResponseWriter, r *http.Request, data *pageData) {
	items, err := h.letters.ListAll(r.Context())
	if err != nil {
		h.pageError(w, r, data, err)
		return
	}
	data.Granted = true
	data.Letters = items
	h.render(w, r, http.StatusOK, data)
}

func (h *Handler) pageError(w http.ResponseWriter, r *http.Request, data *pageData, err error) {
	status, text := statusFor(err)
	h.logger.Error(r.Context(), "page failed", "page", data.Nav, "error", err)
	data.Notice = &notice{Kind: "error", Text: text}
	h.render(w, r, status, data)
}

func (h *Handler) issueViewPass(w http.ResponseWriter, r *http.Request) {
	if len(h.sessionKey) == 0 {
		return
	}
	token, err := auth.GenerateViewToken(h.sessionKey, h.sessionTTL)
	if err != nil {
		// access was granted for this response anyway
		h.logger.Error(r.Context(), "issue view pass", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     common.ViewPassCookieName,
		Value:    token,
		Path:     "/letters",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   r.TLS != nil,
	})
}

func (h *Handler) hasViewPass(r *http.Request) bool {
	if len(h.sessionKey) == 0 || !h.gate.Enabled() {
		return false
	}
	c, err := r.Cookie(common.ViewPassCookieName)
	if err != nil {
		return false
	}
	err = auth.ValidateViewToken(c.Value, h.sessionKey)
	if err != nil && !errors.Is(err, common.ErrTokenExpired) {
		h.logger.Debug(r.Context(), "rejected view pass", "error", err)
	}
	return err == nil
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			h.logger.Error(r.Context(), "health check failed", "error", err)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
