package command

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// CreateRecommendationCommand represents the command to create a new recommendation
type CreateRecommendationCommand struct {
	ProductID               int64
	RecommendationProductID int64
	Relationship            string
}

// CreateRecommendationHandler handles recommendation creation command
type CreateRecommendationHandler struct {
	repo domain.RecommendationRepository
}

// NewCreateRecommendationHandler creates a new create recommendation handler
func NewCreateRecommendationHandler(repo domain.RecommendationRepository) *CreateRecommendationHandler {
	return &CreateRecommendationHandler{repo: repo}
}

// Handle executes the create recommendation command
func (h *CreateRecommendationHandler) Handle(cmd CreateRecommendationCommand) (*domain.Recommendation, error) {
	if cmd.ProductID <= 0 {
		return nil, &domain.ValidationError{Field: "product_id", Message: "product_id must be a positive integer"}
	}
	if cmd.RecommendationProductID <= 0 {
		return nil, &domain.ValidationError{Field: "recommendation_product_id", Message: "recommendation_product_id must be a positive integer"}
	}
	relationship, err := domain.ParseRelationshipType(cmd.Relationship)
	if err != nil {
		return nil, err
	}

	rec := &domain.Recommendation{
		ProductID:               cmd.ProductID,
		RecommendationProductID: cmd.RecommendationProductID,
		Relationship:            relationship,
	}

	// Counters always start at zero; the repository surfaces
	// domain.ErrDuplicateKey when the pair is already stored.
	if err := h.repo.Create(rec); err != nil {
		return nil, err
	}

	return rec, nil
}
