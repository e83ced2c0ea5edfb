package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/firecalc/compound-calculator/internal/calculation"
	"github.com/firecalc/compound-calculator/internal/domain"
)

// Server exposes the projection engine over a small JSON API. It holds no
// state of its own: every request allocates a fresh result, so handlers are
// safe under concurrent load by construction.
type Server struct {
	engine *calculation.Engine
	now    func() time.Time
}

// New creates a server around an engine. A nil engine gets a default one.
func New(engine *calculation.Engine) *Server {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Server{engine: engine, now: time.Now}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/projection", s.handleProjection)
		r.Post("/compare", s.handleCompare)
	})

	return r
}

// projectionRequest is the input shape of POST /api/projection. The
// months override, when present, takes precedence over the purchase date
// inside the settings. A patch, when present, is applied to the settings
// before projecting; an invalid patch rejects the whole request.
type projectionRequest struct {
	Settings                    domain.Settings       `json:"settings"`
	Patch                       *domain.SettingsPatch `json:"patch,omitempty"`
	RemainingContributionMonths *float64              `json:"remaining_contribution_months,omitempty"`
}

// compareRequest is the input shape of POST /api/compare.
type compareRequest struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Patch != nil {
		patched, err := req.Patch.Apply(req.Settings)
		if err != nil {
			writeError(w, "invalid patch: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Settings = patched
	}

	var result domain.ProjectionResult
	if req.RemainingContributionMonths != nil {
		result = calculation.Project(req.Settings, &calculation.Options{
			RemainingContributionMonths: *req.RemainingContributionMonths,
		})
	} else {
		sc := domain.Scenario{ID: uuid.NewString(), Name: "ad-hoc", Settings: req.Settings}
		result = s.engine.RunScenario(sc, s.now()).Projection
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(w, "at least one scenario is required", http.StatusBadRequest)
		return
	}

	for i := range req.Scenarios {
		if req.Scenarios[i].ID == "" {
			req.Scenarios[i].ID = uuid.NewString()
		}
	}

	comparison, err := s.engine.RunPlan(&domain.Plan{Scenarios: req.Scenarios}, s.now())
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, comparison)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
