package domain

import (
	"strconv"
	"strings"
)

// RelationshipType classifies how two products relate to each other.
// Values are persisted and serialized by symbolic name.
type RelationshipType string

const (
	GoTogether RelationshipType = "GO_TOGETHER"
	CrossSell  RelationshipType = "CROSS_SELL"
	UpSell     RelationshipType = "UP_SELL"
	Accessory  RelationshipType = "ACCESSORY"
)

// RelationshipTypes returns all valid relationship types.
func RelationshipTypes() []RelationshipType {
	return []RelationshipType{GoTogether, CrossSell, UpSell, Accessory}
}

// Valid reports whether t is one of the defined relationship types.
func (t RelationshipType) Valid() bool {
	switch t {
	case GoTogether, CrossSell, UpSell, Accessory:
		return true
	}
	return false
}

func (t RelationshipType) String() string {
	return string(t)
}

// ParseRelationshipType converts a symbolic name into a RelationshipType.
// Empty or unrecognized names are rejected with a ValidationError.
func ParseRelationshipType(s string) (RelationshipType, error) {
	t := RelationshipType(s)
	if !t.Valid() {
		return "", &ValidationError{
			Field:   "relationship",
			Message: "unsupported relationship " + strconv.Quote(s) + ", supported relationships are " + supportedRelationshipNames(),
		}
	}
	return t, nil
}

func supportedRelationshipNames() string {
	names := make([]string, 0, len(RelationshipTypes()))
	for _, t := range RelationshipTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// RecommendationKey is the composite identity of a recommendation.
type RecommendationKey struct {
	ProductID               int64
	RecommendationProductID int64
}

// Less orders keys by product id, then by recommended product id.
func (k RecommendationKey) Less(other RecommendationKey) bool {
	if k.ProductID != other.ProductID {
		return k.ProductID < other.ProductID
	}
	return k.RecommendationProductID < other.RecommendationProductID
}

// Recommendation represents a directed relationship between two products.
type Recommendation struct {
	ProductID               int64            `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	RecommendationProductID int64            `json:"recommendation_product_id" gorm:"primaryKey;autoIncrement:false"`
	Relationship            RelationshipType `json:"relationship" gorm:"type:varchar(32);not null;default:GO_TOGETHER"`
	Likes                   int64            `json:"likes" gorm:"not null;default:0"`
	Dislikes                int64            `json:"dislikes" gorm:"not null;default:0"`
}

// TableName specifies the table name
func (Recommendation) TableName() string {
	return "recommendations"
}

// Key returns the composite identity of the recommendation.
func (r *Recommendation) Key() RecommendationKey {
	return RecommendationKey{
		ProductID:               r.ProductID,
		RecommendationProductID: r.RecommendationProductID,
	}
}

// RecommendationRepository defines the contract for recommendation data access
type RecommendationRepository interface {
	Create(rec *Recommendation) error
	FindByKey(key RecommendationKey) (*Recommendation, error)
	FindAll() ([]Recommendation, error)
	FindByProduct(productID int64, relationship *RelationshipType) ([]Recommendation, error)
	Update(rec *Recommendation) error
	IncrementLikes(key RecommendationKey) (*Recommendation, error)
	IncrementDislikes(key RecommendationKey) (*Recommendation, error)
	Delete(key RecommendationKey) error
	DeleteByProduct(productID int64) (int64, error)
	Clear() error
	Count() (int64, error)
	CountByRelationship() (map[RelationshipType]int64, error)
}
