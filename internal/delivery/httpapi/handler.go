package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// Recommender is the slice of the engine the HTTP layer needs.
type Recommender interface {
	Recommend(ctx context.Context, req entity.RecommendationRequest) (*entity.RecommendationResponse, error)
}

// Handler exposes the recommendation engine over HTTP, intended to be called
// from the shop front end.
type Handler struct {
	engine Recommender
	logger zerolog.Logger
}

func NewHandler(engine Recommender, logger zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger.With().Str("component", "httpapi").Logger(),
	}
}

// Router builds the chi router with CORS open to shop-front origins.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/api/health", h.handleHealth)
	r.Post("/api/recommend", h.handleRecommend)
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req entity.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.BudgetMax < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "budgetMax must not be negative"})
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("recommendation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "recommendation failed"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
