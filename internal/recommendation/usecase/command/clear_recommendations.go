package command

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// ClearRecommendationsCommand represents the command to delete every
// stored recommendation. Reserved for test and administrative use; the
// delivery layer decides whether the route is exposed at all.
type ClearRecommendationsCommand struct{}

// ClearRecommendationsHandler handles the clear command
type ClearRecommendationsHandler struct {
	repo domain.RecommendationRepository
}

// NewClearRecommendationsHandler creates a new clear recommendations handler
func NewClearRecommendationsHandler(repo domain.RecommendationRepository) *ClearRecommendationsHandler {
	return &ClearRecommendationsHandler{repo: repo}
}

// Handle executes the clear command unconditionally.
func (h *ClearRecommendationsHandler) Handle(_ ClearRecommendationsCommand) error {
	return h.repo.Clear()
}
