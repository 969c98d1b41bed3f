package query

import (
	"fmt"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// ListByProductQuery represents the query to list recommendations for a
// product, optionally narrowed to a single relationship type
type ListByProductQuery struct {
	ProductID    int64
	Relationship string // Optional: filter by relationship type
}

// ListByProductHandler handles list by product query
type ListByProductHandler struct {
	repo domain.RecommendationRepository
}

// NewListByProductHandler creates a new list by product handler
func NewListByProductHandler(repo domain.RecommendationRepository) *ListByProductHandler {
	return &ListByProductHandler{repo: repo}
}

// Handle executes the list by product query. An empty relationship
// returns every recommendation for the product; an unknown one is a
// validation error rather than a silently empty result.
func (h *ListByProductHandler) Handle(q ListByProductQuery) ([]domain.Recommendation, error) {
	var filter *domain.RelationshipType
	if q.Relationship != "" {
		relationship, err := domain.ParseRelationshipType(q.Relationship)
		if err != nil {
			return nil, err
		}
		filter = &relationship
	}

	recs, err := h.repo.FindByProduct(q.ProductID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations for product %d: %w", q.ProductID, err)
	}
	return recs, nil
}
