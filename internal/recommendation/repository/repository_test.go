package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and
// skips the test when the variable is unset, so the integration tests
// only run against a real Postgres instance.
func openTestDB(t *testing.T) *GormRecommendationRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping database integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	repo := NewGormRecommendationRepository(db)
	require.NoError(t, repo.AutoMigrate())
	require.NoError(t, repo.Clear())
	return repo
}

func TestGormRepositoryCreateAndFind(t *testing.T) {
	repo := openTestDB(t)

	rec := &domain.Recommendation{ProductID: 1, RecommendationProductID: 2, Relationship: domain.UpSell}
	require.NoError(t, repo.Create(rec))

	stored, err := repo.FindByKey(rec.Key())
	require.NoError(t, err)
	assert.Equal(t, domain.UpSell, stored.Relationship)
	assert.Zero(t, stored.Likes)

	require.ErrorIs(t, repo.Create(rec), domain.ErrDuplicateKey)

	_, err = repo.FindByKey(domain.RecommendationKey{ProductID: 8, RecommendationProductID: 9})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGormRepositoryIncrementCounters(t *testing.T) {
	repo := openTestDB(t)

	rec := &domain.Recommendation{ProductID: 1, RecommendationProductID: 2, Relationship: domain.GoTogether}
	require.NoError(t, repo.Create(rec))

	for i := int64(1); i <= 3; i++ {
		updated, err := repo.IncrementLikes(rec.Key())
		require.NoError(t, err)
		assert.Equal(t, i, updated.Likes)
	}

	updated, err := repo.IncrementDislikes(rec.Key())
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Likes)
	assert.Equal(t, int64(1), updated.Dislikes)

	_, err = repo.IncrementLikes(domain.RecommendationKey{ProductID: 8, RecommendationProductID: 9})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGormRepositoryFindByProduct(t *testing.T) {
	repo := openTestDB(t)

	seed := []domain.Recommendation{
		{ProductID: 1, RecommendationProductID: 2, Relationship: domain.UpSell},
		{ProductID: 1, RecommendationProductID: 3, Relationship: domain.UpSell},
		{ProductID: 1, RecommendationProductID: 4, Relationship: domain.Accessory},
		{ProductID: 2, RecommendationProductID: 5, Relationship: domain.UpSell},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	upSell := domain.UpSell
	recs, err := repo.FindByProduct(1, &upSell)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = repo.FindByProduct(1, nil)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestGormRepositoryDeleteByProduct(t *testing.T) {
	repo := openTestDB(t)

	seed := []domain.Recommendation{
		{ProductID: 1, RecommendationProductID: 2, Relationship: domain.UpSell},
		{ProductID: 2, RecommendationProductID: 3, Relationship: domain.Accessory},
		{ProductID: 3, RecommendationProductID: 2, Relationship: domain.GoTogether},
		{ProductID: 4, RecommendationProductID: 5, Relationship: domain.CrossSell},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	// Product 2 appears on both sides of the pair
	deleted, err := repo.DeleteByProduct(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormRepositoryStats(t *testing.T) {
	repo := openTestDB(t)

	seed := []domain.Recommendation{
		{ProductID: 1, RecommendationProductID: 2, Relationship: domain.UpSell},
		{ProductID: 1, RecommendationProductID: 3, Relationship: domain.UpSell},
		{ProductID: 2, RecommendationProductID: 3, Relationship: domain.Accessory},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	counts, err := repo.CountByRelationship()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.UpSell])
	assert.Equal(t, int64(1), counts[domain.Accessory])
}
