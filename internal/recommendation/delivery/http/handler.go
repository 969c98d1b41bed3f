package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
	"github.com/tair/recommendation-service/internal/recommendation/usecase/command"
	"github.com/tair/recommendation-service/internal/recommendation/usecase/query"
	"github.com/tair/recommendation-service/kafka"
	"github.com/tair/recommendation-service/pkg/logger"
)

// RatingPublisher publishes rating events to the message bus.
// Nil disables publishing entirely.
type RatingPublisher interface {
	PublishRecommendationRated(ctx context.Context, event kafka.RecommendationRatedEvent) error
}

// RecommendationHandler handles HTTP requests for recommendations using CQRS pattern
type RecommendationHandler struct {
	// Command handlers
	createHandler *command.CreateRecommendationHandler
	updateHandler *command.UpdateRelationshipHandler
	deleteHandler *command.DeleteRecommendationHandler
	rateHandler   *command.RateRecommendationHandler
	clearHandler  *command.ClearRecommendationsHandler

	// Query handlers
	getHandler           *query.GetRecommendationHandler
	listHandler          *query.ListRecommendationsHandler
	listByProductHandler *query.ListByProductHandler
	statsHandler         *query.GetStatsHandler

	repo      domain.RecommendationRepository
	publisher RatingPublisher

	requestCounter       *prometheus.CounterVec
	requestLatency       *prometheus.HistogramVec
	requestSummary       *prometheus.SummaryVec
	totalRecommendations prometheus.Gauge
}

// NewRecommendationHandler creates a new recommendation handler with CQRS pattern (manual DI)
func NewRecommendationHandler(repo domain.RecommendationRepository) *RecommendationHandler {
	return NewRecommendationHandlerWithDI(
		command.NewCreateRecommendationHandler(repo),
		command.NewUpdateRelationshipHandler(repo),
		command.NewDeleteRecommendationHandler(repo),
		command.NewRateRecommendationHandler(repo),
		command.NewClearRecommendationsHandler(repo),
		query.NewGetRecommendationHandler(repo),
		query.NewListRecommendationsHandler(repo),
		query.NewListByProductHandler(repo),
		query.NewGetStatsHandler(repo),
		repo,
	)
}

// NewRecommendationHandlerWithDI creates a new recommendation handler using
// dependency injection. This is used by Wire for automatic dependency injection.
func NewRecommendationHandlerWithDI(
	createHandler *command.CreateRecommendationHandler,
	updateHandler *command.UpdateRelationshipHandler,
	deleteHandler *command.DeleteRecommendationHandler,
	rateHandler *command.RateRecommendationHandler,
	clearHandler *command.ClearRecommendationsHandler,
	getHandler *query.GetRecommendationHandler,
	listHandler *query.ListRecommendationsHandler,
	listByProductHandler *query.ListByProductHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.RecommendationRepository,
) *RecommendationHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_service_requests_total",
			Help: "Total number of requests to recommendation service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_service_request_duration_seconds",
			Help:    "Duration of recommendation service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "recommendation_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalRecommendations := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommendation_service_total_recommendations",
			Help: "Total number of recommendations in the system",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalRecommendations)

	return &RecommendationHandler{
		createHandler:        createHandler,
		updateHandler:        updateHandler,
		deleteHandler:        deleteHandler,
		rateHandler:          rateHandler,
		clearHandler:         clearHandler,
		getHandler:           getHandler,
		listHandler:          listHandler,
		listByProductHandler: listByProductHandler,
		statsHandler:         statsHandler,
		repo:                 repo,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		requestSummary:       requestSummary,
		totalRecommendations: totalRecommendations,
	}
}

// SetPublisher attaches an optional event publisher for rating events.
func (h *RecommendationHandler) SetPublisher(p RatingPublisher) {
	h.publisher = p
}

// ErrorResponse is the structured payload returned for every failure.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// IndexResponse describes the service on the root route.
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	ListURL string `json:"list_url"`
	DocsURL string `json:"docs_url"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *RecommendationHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the REST surface. The clear-all route is only
// exposed when the service runs in testing mode.
func (h *RecommendationHandler) RegisterRoutes(router *mux.Router, testingMode bool) {
	router.HandleFunc("/", h.metricsMiddleware("/", h.Index)).Methods("GET")

	router.HandleFunc("/api/recommendations", h.metricsMiddleware("/api/recommendations", h.ListRecommendations)).Methods("GET")
	router.HandleFunc("/api/recommendations", h.metricsMiddleware("/api/recommendations", h.CreateRecommendation)).Methods("POST")
	router.HandleFunc("/api/recommendations/stats", h.metricsMiddleware("/api/recommendations/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/recommendations/{product_id:[0-9]+}", h.metricsMiddleware("/api/recommendations/{product_id}", h.ListByProduct)).Methods("GET")

	pairPath := "/api/recommendations/{product_id:[0-9]+}/recommended-products/{recommendation_product_id:[0-9]+}"
	router.HandleFunc(pairPath, h.metricsMiddleware(pairPath, h.GetRecommendation)).Methods("GET")
	router.HandleFunc(pairPath, h.metricsMiddleware(pairPath, h.UpdateRecommendation)).Methods("PUT")
	router.HandleFunc(pairPath, h.metricsMiddleware(pairPath, h.DeleteRecommendation)).Methods("DELETE")
	router.HandleFunc(pairPath+"/like", h.metricsMiddleware(pairPath+"/like", h.LikeRecommendation)).Methods("PUT")
	router.HandleFunc(pairPath+"/dislike", h.metricsMiddleware(pairPath+"/dislike", h.DislikeRecommendation)).Methods("PUT")

	if testingMode {
		router.HandleFunc("/api/recommendations", h.metricsMiddleware("/api/recommendations", h.ClearRecommendations)).Methods("DELETE")
	}
}

// Index handles GET /
func (h *RecommendationHandler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, IndexResponse{
		Name:    "Recommendation REST API Service",
		Version: "1.0",
		ListURL: "/api/recommendations",
		DocsURL: "/swagger/index.html",
	})
}

// ListRecommendations handles GET /api/recommendations
func (h *RecommendationHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.listHandler.Handle(query.ListRecommendationsQuery{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, serializeAll(recs))
}

// ListByProduct handles GET /api/recommendations/{product_id}?type=
func (h *RecommendationHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "product_id")
	if !ok {
		return
	}

	q := query.ListByProductQuery{
		ProductID:    productID,
		Relationship: r.URL.Query().Get("type"),
	}

	recs, err := h.listByProductHandler.Handle(q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, serializeAll(recs))
}

// GetRecommendation handles GET /api/recommendations/{product_id}/recommended-products/{recommendation_product_id}
func (h *RecommendationHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	productID, recommendationProductID, ok := pairIDs(w, r)
	if !ok {
		return
	}

	rec, err := h.getHandler.Handle(query.GetRecommendationQuery{
		ProductID:               productID,
		RecommendationProductID: recommendationProductID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// CreateRecommendation handles POST /api/recommendations
func (h *RecommendationHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	if !h.checkContentType(w, r) {
		return
	}

	rec, err := domain.DecodeRecommendation(r.Body)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	created, err := h.createHandler.Handle(command.CreateRecommendationCommand{
		ProductID:               rec.ProductID,
		RecommendationProductID: rec.RecommendationProductID,
		Relationship:            rec.Relationship.String(),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateRecommendationsMetric()

	location := fmt.Sprintf("/api/recommendations/%d/recommended-products/%d",
		created.ProductID, created.RecommendationProductID)
	w.Header().Set("Location", location)
	respondJSON(w, http.StatusCreated, created)
}

// UpdateRecommendation handles PUT /api/recommendations/{product_id}/recommended-products/{recommendation_product_id}
func (h *RecommendationHandler) UpdateRecommendation(w http.ResponseWriter, r *http.Request) {
	if !h.checkContentType(w, r) {
		return
	}

	productID, recommendationProductID, ok := pairIDs(w, r)
	if !ok {
		return
	}

	var payload domain.RecommendationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, r, &domain.ValidationError{Message: "body of request contained bad or no data"})
		return
	}
	if payload.Relationship == nil {
		h.respondError(w, r, &domain.ValidationError{Field: "relationship", Message: "missing relationship"})
		return
	}

	rec, err := h.updateHandler.Handle(command.UpdateRelationshipCommand{
		ProductID:               productID,
		RecommendationProductID: recommendationProductID,
		Relationship:            *payload.Relationship,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// DeleteRecommendation handles DELETE /api/recommendations/{product_id}/recommended-products/{recommendation_product_id}
func (h *RecommendationHandler) DeleteRecommendation(w http.ResponseWriter, r *http.Request) {
	productID, recommendationProductID, ok := pairIDs(w, r)
	if !ok {
		return
	}

	err := h.deleteHandler.Handle(command.DeleteRecommendationCommand{
		ProductID:               productID,
		RecommendationProductID: recommendationProductID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateRecommendationsMetric()
	w.WriteHeader(http.StatusNoContent)
}

// LikeRecommendation handles PUT .../like
func (h *RecommendationHandler) LikeRecommendation(w http.ResponseWriter, r *http.Request) {
	h.rate(w, r, command.RatingLike)
}

// DislikeRecommendation handles PUT .../dislike
func (h *RecommendationHandler) DislikeRecommendation(w http.ResponseWriter, r *http.Request) {
	h.rate(w, r, command.RatingDislike)
}

func (h *RecommendationHandler) rate(w http.ResponseWriter, r *http.Request, rating command.Rating) {
	productID, recommendationProductID, ok := pairIDs(w, r)
	if !ok {
		return
	}

	rec, err := h.rateHandler.Handle(command.RateRecommendationCommand{
		ProductID:               productID,
		RecommendationProductID: recommendationProductID,
		Rating:                  rating,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if h.publisher != nil {
		event := kafka.RecommendationRatedEvent{
			ProductID:               rec.ProductID,
			RecommendationProductID: rec.RecommendationProductID,
			Rating:                  string(rating),
			Likes:                   rec.Likes,
			Dislikes:                rec.Dislikes,
		}
		if err := h.publisher.PublishRecommendationRated(r.Context(), event); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Failed to publish rating event")
		}
	}

	respondJSON(w, http.StatusOK, rec)
}

// ClearRecommendations handles DELETE /api/recommendations (testing mode only)
func (h *RecommendationHandler) ClearRecommendations(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(command.ClearRecommendationsCommand{}); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateRecommendationsMetric()
	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /api/recommendations/stats
func (h *RecommendationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// RegisterHealthCheck exposes a liveness probe backed by a database ping.
func (h *RecommendationHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
				Status:  http.StatusServiceUnavailable,
				Error:   "Service Unavailable",
				Message: "database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
	}).Methods("GET")
}

// checkContentType rejects structured bodies that are not JSON.
func (h *RecommendationHandler) checkContentType(w http.ResponseWriter, r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "application/json" || strings.HasPrefix(contentType, "application/json;") {
		return true
	}

	logger.Logger.Error().Str("content_type", contentType).Msg("Invalid Content-Type")
	respondJSON(w, http.StatusUnsupportedMediaType, ErrorResponse{
		Status:  http.StatusUnsupportedMediaType,
		Error:   "Unsupported Media Type",
		Message: "Content-Type must be application/json",
	})
	return false
}

// respondError converts domain errors into the structured error payload.
func (h *RecommendationHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Bad Request",
			Message: ve.Error(),
		})
	case errors.Is(err, domain.ErrDuplicateKey):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Bad Request",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, ErrorResponse{
			Status:  http.StatusNotFound,
			Error:   "Not Found",
			Message: err.Error(),
		})
	case isUnavailable(err):
		logger.Error(r.Context()).Err(err).Msg("Backing store unavailable")
		respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Status:  http.StatusServiceUnavailable,
			Error:   "Service Unavailable",
			Message: "backing store unavailable",
		})
	default:
		logger.Error(r.Context()).Err(err).Msg("Unhandled error")
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Status:  http.StatusInternalServerError,
			Error:   "Internal Server Error",
			Message: "an unexpected error occurred",
		})
	}
}

// isUnavailable recognizes connection-level failures from the database
// driver so they surface as 503 rather than 500.
func isUnavailable(err error) bool {
	if errors.Is(err, sql.ErrConnDone) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "bad connection")
}

// updateRecommendationsMetric updates the total recommendations gauge
func (h *RecommendationHandler) updateRecommendationsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalRecommendations.Set(float64(count))
	}
}

// pathID parses a single integer path variable, responding 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Bad Request",
			Message: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}

func pairIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	productID, ok := pathID(w, r, "product_id")
	if !ok {
		return 0, 0, false
	}
	recommendationProductID, ok := pathID(w, r, "recommendation_product_id")
	if !ok {
		return 0, 0, false
	}
	return productID, recommendationProductID, true
}

// serializeAll guarantees an empty array rather than null for no rows.
func serializeAll(recs []domain.Recommendation) []domain.Recommendation {
	if recs == nil {
		return []domain.Recommendation{}
	}
	return recs
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
