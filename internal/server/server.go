// Package server routes requests to pages and public assets.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"pageserve/internal/config"
	"pageserve/internal/static"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Server struct {
	cfg       *config.Config
	routes    RouteTable
	responder *static.Responder
	logger    *zap.Logger
	router    *mux.Router
	handler   http.Handler
	server    *http.Server
}

func NewServer(cfg *config.Config, routes RouteTable, responder *static.Responder, logger *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		routes:    routes,
		responder: responder,
		logger:    logger,
		// cleanPaths normalizes instead; mux would answer dot segments with a 301.
		router: mux.NewRouter().SkipClean(true),
	}
	s.setupRoutes()

	// Wrapped outside the router so unmatched paths are logged and recovered too.
	s.handler = s.logRequests(s.recoverPanics(cleanPaths(s.router)))

	// No read/write timeouts: requests are one bounded file read each.
	s.server = &http.Server{
		Addr:    cfg.Addr(),
		Handler: s,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/", s.handleRoot)

	// Public assets
	s.router.PathPrefix(publicPrefix).HandlerFunc(s.handlePublic)

	// Pages, matched literally rather than as mux templates
	s.router.MatcherFunc(s.matchPage).HandlerFunc(s.handlePage)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Start listens on the configured port and blocks until Stop is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. It returns nil after a graceful Stop.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Web server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("pages", s.cfg.PagesDir),
		zap.String("public", s.cfg.PublicDir))

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
