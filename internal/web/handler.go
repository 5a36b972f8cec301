// Package web serves the Unspoken pages and JSON API over HTTP.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/dmitrijs2005/unspoken/internal/logging"
	"github.com/dmitrijs2005/unspoken/internal/metrics"
	"github.com/dmitrijs2005/unspoken/internal/models"
	"github.com/dmitrijs2005/unspoken/internal/services"
)

// PageTitle heads every page.
const PageTitle = "Unspoken: A Safe Place for the Words You Can't Say"

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"write", "search", "timeline", "random", "letters"}

var funcs = template.FuncMap{
	"stamp": func(t time.Time) string { return t.Format(common.TimestampLayout) },
	"half":  func(n int) int { return n / 2 },
	"center": func(b Bar) float64 {
		return b.X + b.Width/2
	},
}

var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	out := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		out[name] = template.Must(template.New(name).Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return out
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of a Handler.
type Deps struct {
	Letters *services.LetterService
	Gate    *services.AccessGate
	Metrics *metrics.Metrics
	Logger  logging.Logger
	Health  Pinger

	// SessionKey signs view passes; SessionTTL bounds their lifetime.
	SessionKey []byte
	SessionTTL time.Duration
}

type Handler struct {
	letters    *services.LetterService
	gate       *services.AccessGate
	metrics    *metrics.Metrics
	logger     logging.Logger
	health     Pinger
	sessionKey []byte
	sessionTTL time.Duration
}

func NewHandler(d Deps) *Handler {
	h := &Handler{
		letters:    d.Letters,
		gate:       d.Gate,
		metrics:    d.Metrics,
		logger:     d.Logger,
		health:     d.Health,
		sessionKey: d.SessionKey,
		sessionTTL: d.SessionTTL,
	}
	if h.logger == nil {
		h.logger = logging.Discard()
	}
	if h.metrics == nil {
		h.metrics = metrics.NewMetrics()
	}
	return h
}

type notice struct {
	Kind string
	Text string
}

type pageData struct {
	Title    string
	Nav      string
	Remind   bool
	Notice   *notice
	Feelings []string

	Selected string
	Draft    string

	Letters []models.Letter
	Count   int
	Letter  *models.Letter
	Chart   Chart
	Granted bool
}

func (h *Handler) newPage(r *http.Request, nav string) *pageData {
	remind, err := h.letters.ShouldRemind(r.Context())
	if err != nil {
		// the banner is optional; the page still renders
		h.logger.Warn(r.Context(), "reminder check failed", "error", err)
	}
	return &pageData{
		Title:    PageTitle,
		Nav:      nav,
		Remind:   remind,
		Feelings: models.Feelings,
		Selected: models.FeelingLove,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data *pageData) {
	tmpl, ok := pages[data.Nav]
	if !ok {
		h.logger.Error(r.Context(), "unknown page", "page", data.Nav)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error(r.Context(), "render page", "page", data.Nav, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
