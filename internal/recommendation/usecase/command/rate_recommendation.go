package command

import (
	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// Rating is the direction of a rate command.
type Rating string

const (
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
)

// RateRecommendationCommand represents the command to like or dislike
// an existing recommendation
type RateRecommendationCommand struct {
	ProductID               int64
	RecommendationProductID int64
	Rating                  Rating
}

// RateRecommendationHandler handles like/dislike commands
type RateRecommendationHandler struct {
	repo domain.RecommendationRepository
}

// NewRateRecommendationHandler creates a new rate recommendation handler
func NewRateRecommendationHandler(repo domain.RecommendationRepository) *RateRecommendationHandler {
	return &RateRecommendationHandler{repo: repo}
}

// Handle executes the rate command, incrementing the matching counter
// by exactly one. Counters only ever grow; no decrement exists.
func (h *RateRecommendationHandler) Handle(cmd RateRecommendationCommand) (*domain.Recommendation, error) {
	key := domain.RecommendationKey{
		ProductID:               cmd.ProductID,
		RecommendationProductID: cmd.RecommendationProductID,
	}

	switch cmd.Rating {
	case RatingLike:
		return h.repo.IncrementLikes(key)
	case RatingDislike:
		return h.repo.IncrementDislikes(key)
	default:
		return nil, &domain.ValidationError{Field: "rating", Message: "rating must be like or dislike"}
	}
}
