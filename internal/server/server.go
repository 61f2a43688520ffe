// Package server wires the landing page, its upload forms and the static
// images onto a chi router.
package server

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pragati-app/pragati-web/internal/assets"
	"github.com/pragati-app/pragati-web/internal/components"
	"github.com/pragati-app/pragati-web/internal/store"
	"github.com/pragati-app/pragati-web/pkg/types"
)

type Server struct {
	site   types.Site
	store  *store.Store
	logger *zap.Logger
	cookie string
}

func New(site types.Site, st *store.Store, logger *zap.Logger, cookieName string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{site: site, store: st, logger: logger, cookie: cookieName}
}

// PanelIDs lists the panels a session needs an uploader for.
func PanelIDs(site types.Site) []string {
	ids := make([]string, 0, len(site.Panels))
	for _, p := range site.Panels {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"pragati-web"}`))
	})
	r.Get("/", s.handleIndex)
	r.Post("/panels/{panel}/submit", s.handleSubmit)
	r.Handle(assets.Prefix+"*", http.StripPrefix("/assets", assets.Handler()))
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	state := components.PageState{
		Uploaders:     make(map[string]components.UploaderView, len(s.site.Panels)),
		Notifications: sess.TakeNotifications(),
	}
	for _, p := range s.site.Panels {
		v := components.UploaderView{PanelID: p.ID}
		if f, ok := sess.Selected(p.ID); ok {
			v.Selected, v.Has = f.Name, true
		}
		state.Uploaders[p.ID] = v
	}

	var buf bytes.Buffer
	if err := components.App(s.site, state).Render(&buf); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// session returns the visitor's session, starting a new one when the cookie
// is missing or has expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *store.Session {
	if c, err := r.Cookie(s.cookie); err == nil {
		if sess, ok := s.store.Get(c.Value); ok {
			return sess
		}
	}
	sess := s.store.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
