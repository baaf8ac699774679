package server

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/conneroisu/storecraft/internal/build"
	"github.com/conneroisu/storecraft/internal/composer"
	storeerrors "github.com/conneroisu/storecraft/internal/errors"
	"github.com/conneroisu/storecraft/internal/export"
	"github.com/conneroisu/storecraft/internal/preview"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/styles"
	"github.com/conneroisu/storecraft/internal/theme"
)

// ReloadPath is the live-reload client script route.
const ReloadPath = "/preview.js"

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Store     string    `json:"store,omitempty"`
	Error     string    `json:"error,omitempty"`
	Clients   int       `json:"clients"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *PreviewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	site, loadErr := s.Store()

	resp := HealthResponse{Status: "ok", Clients: s.hub.Count(), Timestamp: time.Now()}
	if site != nil {
		resp.Store = site.Branding.Name
	}
	if loadErr != nil {
		resp.Status = "degraded"
		resp.Error = loadErr.Error()
	}
	if site == nil {
		resp.Status = "unavailable"
	}

	status := http.StatusOK
	if resp.Status == "unavailable" {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, r, status, resp)
}

// current returns the served store or writes 503.
func (s *PreviewServer) current(w http.ResponseWriter) *store.Configuration {
	site, loadErr := s.Store()
	if site == nil {
		msg := "store not loaded"
		if loadErr != nil {
			msg = loadErr.Error()
		}
		http.Error(w, msg, http.StatusServiceUnavailable)
	}

	return site
}

func (s *PreviewServer) scripts() []string {
	scripts := []string{build.FileScript}
	if s.config.Development.HotReload {
		scripts = append(scripts, strings.TrimPrefix(ReloadPath, "/"))
	}

	return scripts
}

func (s *PreviewServer) servePlan(w http.ResponseWriter, r *http.Request, plan *composer.Plan) {
	view := preview.Render(plan)
	templ.Handler(view.Page(s.scripts()...)).ServeHTTP(w, r)
}

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	site := s.current(w)
	if site == nil {
		return
	}

	s.servePlan(w, r, composer.Compose(site, s.registry, composer.PaletteFor(site)))
}

func (s *PreviewServer) handlePage(w http.ResponseWriter, r *http.Request) {
	site := s.current(w)
	if site == nil {
		return
	}

	slug := chi.URLParam(r, "slug")
	for _, page := range site.PublishedPages() {
		if page.Slug == slug {
			s.servePlan(w, r, composer.ComposePage(site, s.registry, composer.PaletteFor(site), page))
			return
		}
	}

	http.NotFound(w, r)
}

func (s *PreviewServer) handleStyles(w http.ResponseWriter, r *http.Request) {
	site := s.current(w)
	if site == nil {
		return
	}

	normalized := store.Normalize(site)
	css := styles.Stylesheet(composer.PaletteFor(normalized), normalized.Layout)

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(css))
}

func (s *PreviewServer) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(build.Script))
}

func (s *PreviewServer) handleReloadScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(ReloadScript))
}

// PlanResponse is the body of /api/plan.
type PlanResponse struct {
	Store   string          `json:"store"`
	Theme   string          `json:"theme"`
	Palette theme.Palette   `json:"palette"`
	Steps   []composer.Step `json:"steps"`
	Pages   []string        `json:"pages"`
}

func (s *PreviewServer) handlePlan(w http.ResponseWriter, r *http.Request) {
	site := s.current(w)
	if site == nil {
		return
	}

	palette := composer.PaletteFor(site)
	plan := composer.Compose(site, s.registry, palette)

	resp := PlanResponse{
		Store:   plan.Site.Branding.Name,
		Theme:   theme.Lookup(site.ThemeID).ID,
		Palette: palette,
		Steps:   plan.Describe(),
		Pages:   []string{},
	}
	for _, p := range site.PublishedPages() {
		resp.Pages = append(resp.Pages, p.FileName())
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

// TemplateInfo describes one registered variant.
type TemplateInfo struct {
	Kind        store.SectionKey `json:"kind"`
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Default     bool             `json:"default"`
}

func (s *PreviewServer) handleTemplates(w http.ResponseWriter, r *http.Request) {
	out := []TemplateInfo{}
	for _, kind := range s.registry.Kinds() {
		def := s.registry.Default(kind)
		for _, m := range s.registry.List(kind) {
			out = append(out, TemplateInfo{
				Kind:        kind,
				ID:          m.ID,
				Name:        m.Metadata.Name,
				Description: m.Metadata.Description,
				Default:     m == def,
			})
		}
	}

	s.writeJSON(w, r, http.StatusOK, out)
}

// ThemeInfo describes one theme of the table.
type ThemeInfo struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Palette theme.Palette `json:"palette"`
}

func (s *PreviewServer) handleThemes(w http.ResponseWriter, r *http.Request) {
	out := make([]ThemeInfo, 0, len(theme.Themes))
	for _, th := range theme.Themes {
		out = append(out, ThemeInfo{ID: th.ID, Name: th.Name, Palette: th.Palette})
	}

	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *PreviewServer) handleExport(w http.ResponseWriter, r *http.Request) {
	site := s.current(w)
	if site == nil {
		return
	}

	bundle, err := s.pack(r.Context(), site)
	if err != nil {
		status := http.StatusInternalServerError
		if storeerrors.IsIntegrity(err) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}

	name := chi.URLParam(r, "file")
	content, ok := bundle.Files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write([]byte(content))
}

func (s *PreviewServer) pack(ctx context.Context, site *store.Configuration) (export.Bundle, error) {
	return export.Pack(ctx, site, export.Options{
		Options: build.Options{
			Minify:  s.config.Build.Minify,
			BaseURL: s.config.Build.BaseURL,
		},
		Registry: s.registry,
		Logger:   s.logger,
	})
}

func (s *PreviewServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn(r.Context(), err, "Failed to encode response", "path", r.URL.Path)
	}
}
