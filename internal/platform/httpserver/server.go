package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	phragmenengine "pericles/contexts/election-core/phragmen-engine"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "pericles/internal/platform/httpserver/docs"
)

type Server struct {
	mux           *http.ServeMux
	logger        *slog.Logger
	addr          string
	elections     phragmenengine.Module
	enableHistory bool
}

func New(
	elections phragmenengine.Module,
	logger *slog.Logger,
	addr string,
	enableHistory bool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:           http.NewServeMux(),
		logger:        logger,
		addr:          addr,
		elections:     elections,
		enableHistory: enableHistory,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest wiring.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/elections", s.handleRunElection)

	if s.enableHistory {
		s.mux.HandleFunc("GET /v1/elections", s.handleListRuns)
		s.mux.HandleFunc("GET /v1/elections/{run_id}", s.handleGetRun)
		s.mux.HandleFunc("GET /v1/elections/{run_id}/winners", s.handleGetWinners)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
