package command

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// DeleteRecommendationCommand represents the command to delete a recommendation
type DeleteRecommendationCommand struct {
	ProductID               int64
	RecommendationProductID int64
}

// DeleteRecommendationHandler handles recommendation deletion command
type DeleteRecommendationHandler struct {
	repo domain.RecommendationRepository
}

// NewDeleteRecommendationHandler creates a new delete recommendation handler
func NewDeleteRecommendationHandler(repo domain.RecommendationRepository) *DeleteRecommendationHandler {
	return &DeleteRecommendationHandler{repo: repo}
}

// Handle executes the delete recommendation command. Deleting an absent
// pair is a no-op, keeping the operation idempotent.
func (h *DeleteRecommendationHandler) Handle(cmd DeleteRecommendationCommand) error {
	key := domain.RecommendationKey{
		ProductID:               cmd.ProductID,
		RecommendationProductID: cmd.RecommendationProductID,
	}
	return h.repo.Delete(key)
}
