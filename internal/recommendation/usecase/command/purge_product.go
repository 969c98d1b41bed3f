package command

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// PurgeProductCommand represents the command to remove every
// recommendation referencing a product, on either side of the pair.
// Driven by product.deleted events from the catalog service.
type PurgeProductCommand struct {
	ProductID int64
}

// PurgeProductHandler handles product purge command
type PurgeProductHandler struct {
	repo domain.RecommendationRepository
}

// NewPurgeProductHandler creates a new purge product handler
func NewPurgeProductHandler(repo domain.RecommendationRepository) *PurgeProductHandler {
	return &PurgeProductHandler{repo: repo}
}

// Handle executes the purge command and returns how many rows went away.
func (h *PurgeProductHandler) Handle(cmd PurgeProductCommand) (int64, error) {
	if cmd.ProductID <= 0 {
		return 0, &domain.ValidationError{Field: "product_id", Message: "product_id must be a positive integer"}
	}
	return h.repo.DeleteByProduct(cmd.ProductID)
}
