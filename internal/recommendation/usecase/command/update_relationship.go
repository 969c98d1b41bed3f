package command

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// UpdateRelationshipCommand represents the command to change the
// relationship of an existing recommendation
type UpdateRelationshipCommand struct {
	ProductID               int64
	RecommendationProductID int64
	Relationship            string
}

// UpdateRelationshipHandler handles relationship update command
type UpdateRelationshipHandler struct {
	repo domain.RecommendationRepository
}

// NewUpdateRelationshipHandler creates a new update relationship handler
func NewUpdateRelationshipHandler(repo domain.RecommendationRepository) *UpdateRelationshipHandler {
	return &UpdateRelationshipHandler{repo: repo}
}

// Handle executes the update relationship command. The relationship is
// validated before anything is written; an empty or unknown value never
// reaches the store.
func (h *UpdateRelationshipHandler) Handle(cmd UpdateRelationshipCommand) (*domain.Recommendation, error) {
	relationship, err := domain.ParseRelationshipType(cmd.Relationship)
	if err != nil {
		return nil, err
	}

	key := domain.RecommendationKey{
		ProductID:               cmd.ProductID,
		RecommendationProductID: cmd.RecommendationProductID,
	}

	rec, err := h.repo.FindByKey(key)
	if err != nil {
		return nil, err
	}

	rec.Relationship = relationship

	if err := h.repo.Update(rec); err != nil {
		return nil, err
	}

	return rec, nil
}
