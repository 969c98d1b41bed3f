package query

import (
	"fmt"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// ListRecommendationsQuery represents the query to list all recommendations
type ListRecommendationsQuery struct{}

// ListRecommendationsHandler handles list recommendations query
type ListRecommendationsHandler struct {
	repo domain.RecommendationRepository
}

// NewListRecommendationsHandler creates a new list recommendations handler
func NewListRecommendationsHandler(repo domain.RecommendationRepository) *ListRecommendationsHandler {
	return &ListRecommendationsHandler{repo: repo}
}

// Handle executes the list recommendations query. No ordering is part
// of the contract.
func (h *ListRecommendationsHandler) Handle(_ ListRecommendationsQuery) ([]domain.Recommendation, error) {
	recs, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}
