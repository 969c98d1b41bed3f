package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

type GormRecommendationRepository struct {
	db *gorm.DB
}

func NewGormRecommendationRepository(db *gorm.DB) *GormRecommendationRepository {
	return &GormRecommendationRepository{db: db}
}

func (r *GormRecommendationRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Recommendation{})
}

func (r *GormRecommendationRepository) Create(rec *domain.Recommendation) error {
	err := r.db.Create(rec).Error
	if err != nil && isDuplicateKey(err) {
		return domain.ErrDuplicateKey
	}
	return err
}

func (r *GormRecommendationRepository) FindByKey(key domain.RecommendationKey) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := r.db.
		Where("product_id = ? AND recommendation_product_id = ?", key.ProductID, key.RecommendationProductID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GormRecommendationRepository) FindAll() ([]domain.Recommendation, error) {
	var recs []domain.Recommendation
	err := r.db.Find(&recs).Error
	return recs, err
}

func (r *GormRecommendationRepository) FindByProduct(productID int64, relationship *domain.RelationshipType) ([]domain.Recommendation, error) {
	var recs []domain.Recommendation
	tx := r.db.Where("product_id = ?", productID)
	if relationship != nil {
		tx = tx.Where("relationship = ?", *relationship)
	}
	err := tx.Find(&recs).Error
	return recs, err
}

func (r *GormRecommendationRepository) Update(rec *domain.Recommendation) error {
	return r.db.Save(rec).Error
}

func (r *GormRecommendationRepository) IncrementLikes(key domain.RecommendationKey) (*domain.Recommendation, error) {
	return r.increment(key, "likes")
}

func (r *GormRecommendationRepository) IncrementDislikes(key domain.RecommendationKey) (*domain.Recommendation, error) {
	return r.increment(key, "dislikes")
}

// increment bumps a counter column atomically so concurrent rate calls
// never lose updates.
func (r *GormRecommendationRepository) increment(key domain.RecommendationKey, column string) (*domain.Recommendation, error) {
	result := r.db.Model(&domain.Recommendation{}).
		Where("product_id = ? AND recommendation_product_id = ?", key.ProductID, key.RecommendationProductID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByKey(key)
}

func (r *GormRecommendationRepository) Delete(key domain.RecommendationKey) error {
	return r.db.
		Where("product_id = ? AND recommendation_product_id = ?", key.ProductID, key.RecommendationProductID).
		Delete(&domain.Recommendation{}).Error
}

func (r *GormRecommendationRepository) DeleteByProduct(productID int64) (int64, error) {
	result := r.db.
		Where("product_id = ? OR recommendation_product_id = ?", productID, productID).
		Delete(&domain.Recommendation{})
	return result.RowsAffected, result.Error
}

func (r *GormRecommendationRepository) Clear() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Recommendation{}).Error
}

func (r *GormRecommendationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Recommendation{}).Count(&count).Error
	return count, err
}

func (r *GormRecommendationRepository) CountByRelationship() (map[domain.RelationshipType]int64, error) {
	type row struct {
		Relationship domain.RelationshipType
		Total        int64
	}
	var rows []row
	err := r.db.Model(&domain.Recommendation{}).
		Select("relationship, count(*) as total").
		Group("relationship").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "relationship"}}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.RelationshipType]int64, len(rows))
	for _, r := range rows {
		counts[r.Relationship] = r.Total
	}
	return counts, nil
}

// isDuplicateKey recognizes primary key violations across GORM versions
// and the raw Postgres error text (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
