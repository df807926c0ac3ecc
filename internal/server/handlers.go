package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"pageserve/internal/static"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	publicPrefix = "/public/"
	homePath     = "/home"
)

// handleRoot redirects to the home page without touching the disk.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", homePath)
	w.WriteHeader(http.StatusFound)
}

func (s *Server) handlePublic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, publicPrefix)

	path, ok := containedPath(s.cfg.PublicDir, rel)
	if !ok {
		loggerFrom(r.Context(), s.logger).Warn("Rejected path outside public root",
			zap.String("path", r.URL.Path))
		static.NotFound(w)
		return
	}

	s.responder.ServeFile(w, path, http.StatusOK)
}

func (s *Server) matchPage(r *http.Request, _ *mux.RouteMatch) bool {
	_, ok := s.routes.Lookup(r.URL.Path)
	return ok
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	file, ok := s.routes.Lookup(r.URL.Path)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	s.responder.ServeFile(w, filepath.Join(s.cfg.PagesDir, file), http.StatusOK)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.responder.ServeFile(w, filepath.Join(s.cfg.PagesDir, NotFoundPage), http.StatusNotFound)
}

// containedPath joins rel onto root and reports whether the cleaned result
// still lies inside root.
func containedPath(root, rel string) (string, bool) {
	full := filepath.Join(root, filepath.FromSlash(rel))

	back, err := filepath.Rel(root, full)
	if err != nil {
		return "", false
	}
	if back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
