//go:build wireinject
// +build wireinject

package recommendation

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/recommendation-service/internal/recommendation/delivery/http"
)

// InitializeHandler wires the full HTTP handler graph for the service.
func InitializeHandler(db *gorm.DB) (*httpDelivery.RecommendationHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		httpDelivery.NewRecommendationHandlerWithDI,
	)
	return nil, nil
}
