package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// RunResponse is the API response for an archived run
type RunResponse struct {
	ID        string          `json:"id"`
	Strategy  string          `json:"strategy"`
	Cycles    int             `json:"cycles"`
	Sum       uint64          `json:"iteration_sum"`
	Average   uint64          `json:"average"`
	StartedAt string          `json:"started_at"`
	EndedAt   string          `json:"ended_at"`
	Hostname  string          `json:"hostname,omitempty"`
	Detail    []CycleResponse `json:"detail,omitempty"`
}

// CycleResponse is the API response for one cycle of a run
type CycleResponse struct {
	Index      int    `json:"index"`
	Iterations uint64 `json:"iterations"`
	StartedAt  string `json:"started_at"`
	EndedAt    string `json:"ended_at"`
}

func runToResponse(r *domain.RunRecord) RunResponse {
	return RunResponse{
		ID:        r.ID,
		Strategy:  string(r.Strategy),
		Cycles:    r.Cycles,
		Sum:       r.Sum,
		Average:   r.Average,
		StartedAt: r.StartedAt.Format(time.RFC3339),
		EndedAt:   r.EndedAt.Format(time.RFC3339),
		Hostname:  r.Hostname,
	}
}

func cycleToResponse(c *domain.CycleRecord) CycleResponse {
	return CycleResponse{
		Index:      c.Index,
		Iterations: c.Iterations,
		StartedAt:  c.StartedAt.Format(time.RFC3339),
		EndedAt:    c.EndedAt.Format(time.RFC3339),
	}
}

func (s *Server) listRunsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		runs, err := s.store.ListRuns(limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := make([]RunResponse, 0, len(runs))
		for _, run := range runs {
			resp = append(resp, runToResponse(run))
		}
		writeJSON(w, resp)
	}
}

func (s *Server) getRunHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/runs/")
		if id == "" {
			writeError(w, http.StatusBadRequest, "run id required")
			return
		}

		run, err := s.store.GetRun(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}

		resp := runToResponse(run)
		cycles, err := s.store.ListCycles(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		for _, c := range cycles {
			resp.Detail = append(resp.Detail, cycleToResponse(c))
		}
		writeJSON(w, resp)
	}
}
