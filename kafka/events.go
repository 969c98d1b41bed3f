package kafka

import "time"

// RecommendationRatedEvent is emitted after a like or dislike has been
// recorded for a recommendation.
type RecommendationRatedEvent struct {
	EventID                 string    `json:"event_id"`
	EventType               string    `json:"event_type"`
	ProductID               int64     `json:"product_id"`
	RecommendationProductID int64     `json:"recommendation_product_id"`
	Rating                  string    `json:"rating"`
	Likes                   int64     `json:"likes"`
	Dislikes                int64     `json:"dislikes"`
	Timestamp               time.Time `json:"timestamp"`
}

// ProductDeletedEvent is consumed from the catalog service when a
// product goes away; every recommendation referencing it is purged.
type ProductDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeRecommendationRated = "recommendation.rated"
	EventTypeProductDeleted      = "product.deleted"
)

// Kafka topics
const (
	TopicRecommendationRated = "recommendation-rated"
	TopicProductDeleted      = "product-deleted"
)
