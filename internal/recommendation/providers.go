package recommendation

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
	"github.com/tair/recommendation-service/internal/recommendation/repository"
	"github.com/tair/recommendation-service/internal/recommendation/usecase/command"
	"github.com/tair/recommendation-service/internal/recommendation/usecase/query"
)

// ProvideRecommendationRepository provides the recommendation repository
// wrapped with the tracing decorator.
func ProvideRecommendationRepository(db *gorm.DB) domain.RecommendationRepository {
	return repository.NewGormRecommendationRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideRecommendationRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateRecommendationHandler,
	command.NewUpdateRelationshipHandler,
	command.NewDeleteRecommendationHandler,
	command.NewRateRecommendationHandler,
	command.NewClearRecommendationsHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetRecommendationHandler,
	query.NewListRecommendationsHandler,
	query.NewListByProductHandler,
	query.NewGetStatsHandler,
)
