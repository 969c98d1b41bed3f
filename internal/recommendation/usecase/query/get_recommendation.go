package query

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// GetRecommendationQuery represents the query to get a recommendation by its key
type GetRecommendationQuery struct {
	ProductID               int64
	RecommendationProductID int64
}

// GetRecommendationHandler handles get recommendation query
type GetRecommendationHandler struct {
	repo domain.RecommendationRepository
}

// NewGetRecommendationHandler creates a new get recommendation handler
func NewGetRecommendationHandler(repo domain.RecommendationRepository) *GetRecommendationHandler {
	return &GetRecommendationHandler{repo: repo}
}

// Handle executes the get recommendation query. Absence is signalled
// through domain.ErrNotFound so callers can distinguish it from failure.
func (h *GetRecommendationHandler) Handle(q GetRecommendationQuery) (*domain.Recommendation, error) {
	key := domain.RecommendationKey{
		ProductID:               q.ProductID,
		RecommendationProductID: q.RecommendationProductID,
	}
	return h.repo.FindByKey(key)
}
