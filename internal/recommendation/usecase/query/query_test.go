package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
	"github.com/tair/recommendation-service/internal/recommendation/repository"
	"github.com/tair/recommendation-service/internal/recommendation/usecase/query"
)

func seed(t *testing.T, repo domain.RecommendationRepository, productID, recommendationProductID int64, relationship domain.RelationshipType) {
	t.Helper()
	require.NoError(t, repo.Create(&domain.Recommendation{
		ProductID:               productID,
		RecommendationProductID: recommendationProductID,
		Relationship:            relationship,
	}))
}

func TestGetRecommendation(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	seed(t, repo, 1, 2, domain.UpSell)

	handler := query.NewGetRecommendationHandler(repo)
	rec, err := handler.Handle(query.GetRecommendationQuery{ProductID: 1, RecommendationProductID: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.UpSell, rec.Relationship)
}

func TestGetRecommendationNotFound(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	handler := query.NewGetRecommendationHandler(repo)

	_, err := handler.Handle(query.GetRecommendationQuery{ProductID: 1, RecommendationProductID: 2})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListRecommendations(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	handler := query.NewListRecommendationsHandler(repo)

	recs, err := handler.Handle(query.ListRecommendationsQuery{})
	require.NoError(t, err)
	assert.Empty(t, recs)

	seed(t, repo, 1, 2, domain.UpSell)
	seed(t, repo, 3, 4, domain.Accessory)

	recs, err = handler.Handle(query.ListRecommendationsQuery{})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestListByProductFiltersByType(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	seed(t, repo, 1, 2, domain.UpSell)
	seed(t, repo, 1, 3, domain.UpSell)
	seed(t, repo, 1, 4, domain.Accessory)
	seed(t, repo, 2, 5, domain.UpSell)

	handler := query.NewListByProductHandler(repo)

	recs, err := handler.Handle(query.ListByProductQuery{ProductID: 1, Relationship: "UP_SELL"})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, int64(1), rec.ProductID)
		assert.Equal(t, domain.UpSell, rec.Relationship)
	}
}

func TestListByProductWithoutTypeReturnsAll(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	seed(t, repo, 1, 2, domain.UpSell)
	seed(t, repo, 1, 3, domain.Accessory)
	seed(t, repo, 2, 4, domain.UpSell)

	handler := query.NewListByProductHandler(repo)

	recs, err := handler.Handle(query.ListByProductQuery{ProductID: 1})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestListByProductUnknownTypeRejected(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	handler := query.NewListByProductHandler(repo)

	_, err := handler.Handle(query.ListByProductQuery{ProductID: 1, Relationship: "BOGUS"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestGetStats(t *testing.T) {
	repo := repository.NewMemoryRecommendationRepository()
	seed(t, repo, 1, 2, domain.UpSell)
	seed(t, repo, 1, 3, domain.UpSell)
	seed(t, repo, 2, 3, domain.Accessory)

	handler := query.NewGetStatsHandler(repo)
	stats, err := handler.Handle(query.GetStatsQuery{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByRelationship["UP_SELL"])
	assert.Equal(t, int64(1), stats.ByRelationship["ACCESSORY"])
}
