package domain

import (
	"encoding/json"
	"io"
)

// RecommendationPayload is the wire shape accepted by create and update.
// Pointer fields distinguish absent keys from zero values.
type RecommendationPayload struct {
	ProductID               *int64  `json:"product_id"`
	RecommendationProductID *int64  `json:"recommendation_product_id"`
	Relationship            *string `json:"relationship"`
}

// DecodeRecommendation deserializes a recommendation from a JSON body.
// The body must be an object carrying product_id,
// recommendation_product_id and relationship; the error names the first
// missing field, or reports a malformed body when the input is not an
// object at all.
func DecodeRecommendation(r io.Reader) (*Recommendation, error) {
	var payload RecommendationPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, &ValidationError{Message: "body of request contained bad or no data"}
	}
	return payload.ToRecommendation()
}

// ToRecommendation validates the payload and converts it into an entity.
// Likes and dislikes always start at zero; counters are owned by the
// rate operations.
func (p *RecommendationPayload) ToRecommendation() (*Recommendation, error) {
	if p.ProductID == nil {
		return nil, &ValidationError{Field: "product_id", Message: "missing product_id"}
	}
	if p.RecommendationProductID == nil {
		return nil, &ValidationError{Field: "recommendation_product_id", Message: "missing recommendation_product_id"}
	}
	if p.Relationship == nil {
		return nil, &ValidationError{Field: "relationship", Message: "missing relationship"}
	}

	relationship, err := ParseRelationshipType(*p.Relationship)
	if err != nil {
		return nil, err
	}

	return &Recommendation{
		ProductID:               *p.ProductID,
		RecommendationProductID: *p.RecommendationProductID,
		Relationship:            relationship,
	}, nil
}
