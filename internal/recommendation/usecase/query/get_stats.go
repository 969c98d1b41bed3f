package query

import (
	"fmt"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// GetStatsQuery represents the query to get recommendation statistics
type GetStatsQuery struct{}

// Stats holds aggregate counts over the stored recommendations
type Stats struct {
	Total          int64            `json:"total"`
	ByRelationship map[string]int64 `json:"by_relationship"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.RecommendationRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.RecommendationRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(_ GetStatsQuery) (*Stats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count recommendations: %w", err)
	}

	counts, err := h.repo.CountByRelationship()
	if err != nil {
		return nil, fmt.Errorf("failed to count recommendations by relationship: %w", err)
	}

	byRelationship := make(map[string]int64, len(counts))
	for relationship, count := range counts {
		byRelationship[relationship.String()] = count
	}

	return &Stats{
		Total:          total,
		ByRelationship: byRelationship,
	}, nil
}
