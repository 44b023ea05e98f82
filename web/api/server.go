// Package api serves the benchmark's run archive and a live feed of
// master-log appends over HTTP, SSE and websocket.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/follow"
)

// Store is the read-only view of the run archive the server needs.
type Store interface {
	ListRuns(limit int) ([]*domain.RunRecord, error)
	GetRun(id string) (*domain.RunRecord, error)
	ListCycles(runID string) ([]*domain.CycleRecord, error)
}

// Server is the HTTP API server
type Server struct {
	store      Store
	addr       string
	masterPath string
	mux        *http.ServeMux
	sseHub     *SSEHub
	wsHub      *WSHub
}

// NewServer creates a new API server. masterPath is the master log file to
// tail for the live feed.
func NewServer(store Store, masterPath, addr string) *Server {
	s := &Server{
		store:      store,
		addr:       addr,
		masterPath: masterPath,
		mux:        http.NewServeMux(),
		sseHub:     NewSSEHub(),
		wsHub:      NewWSHub(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/runs", s.listRunsHandler())
	s.mux.HandleFunc("/api/runs/", s.getRunHandler())
	s.mux.HandleFunc("/api/events", s.sseHandler())
	s.mux.HandleFunc("/ws", s.wsHub.Handle)
}

// Start serves until ctx is cancelled. Master-log appends are re-broadcast
// to every SSE and websocket client, so a dashboard sees each cycle block
// the moment a concurrently running benchmark writes it.
func (s *Server) Start(ctx context.Context) error {
	tailer, err := follow.NewTailer(s.masterPath, func(line string) {
		s.Broadcast(Event{Type: "log-line", Data: line})
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	tailer.Start(ctx)
	defer tailer.Stop()

	g.Go(func() error {
		s.sseHub.Run(ctx)
		return nil
	})

	httpServer := &http.Server{Addr: s.addr, Handler: s.mux}
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return httpServer.Shutdown(context.Background())
	})

	return g.Wait()
}

// Broadcast sends an event to all live-feed clients
func (s *Server) Broadcast(event Event) {
	s.sseHub.Broadcast(event)
	s.wsHub.Broadcast(event)
}

// Handler exposes the route mux for tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
