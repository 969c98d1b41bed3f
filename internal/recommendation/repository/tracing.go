package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

var tracer = otel.Tracer("recommendation-repository")

// GormRecommendationRepositoryWithTracing wraps GormRecommendationRepository with tracing
type GormRecommendationRepositoryWithTracing struct {
	*GormRecommendationRepository
}

// NewGormRecommendationRepositoryWithTracing creates a new repository with tracing
func NewGormRecommendationRepositoryWithTracing(db *gorm.DB) *GormRecommendationRepositoryWithTracing {
	return &GormRecommendationRepositoryWithTracing{
		GormRecommendationRepository: NewGormRecommendationRepository(db),
	}
}

func keyAttributes(key domain.RecommendationKey) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.Int64("recommendation.product_id", key.ProductID),
		attribute.Int64("recommendation.recommendation_product_id", key.RecommendationProductID),
	)
}

// Create with tracing
func (r *GormRecommendationRepositoryWithTracing) CreateWithContext(ctx context.Context, rec *domain.Recommendation) error {
	_, span := tracer.Start(ctx, "repository.Create",
		keyAttributes(rec.Key()),
		trace.WithAttributes(attribute.String("recommendation.relationship", rec.Relationship.String())),
	)
	defer span.End()

	err := r.GormRecommendationRepository.Create(rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindByKey with tracing
func (r *GormRecommendationRepositoryWithTracing) FindByKeyWithContext(ctx context.Context, key domain.RecommendationKey) (*domain.Recommendation, error) {
	_, span := tracer.Start(ctx, "repository.FindByKey", keyAttributes(key))
	defer span.End()

	rec, err := r.GormRecommendationRepository.FindByKey(key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("recommendation.relationship", rec.Relationship.String()),
		attribute.Int64("recommendation.likes", rec.Likes),
	)
	return rec, nil
}

// FindAll with tracing
func (r *GormRecommendationRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.Recommendation, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	recs, err := r.GormRecommendationRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(recs)))
	return recs, nil
}

// FindByProduct with tracing
func (r *GormRecommendationRepositoryWithTracing) FindByProductWithContext(ctx context.Context, productID int64, relationship *domain.RelationshipType) ([]domain.Recommendation, error) {
	opts := []trace.SpanStartOption{
		trace.WithAttributes(attribute.Int64("query.product_id", productID)),
	}
	if relationship != nil {
		opts = append(opts, trace.WithAttributes(attribute.String("query.relationship", relationship.String())))
	}

	_, span := tracer.Start(ctx, "repository.FindByProduct", opts...)
	defer span.End()

	recs, err := r.GormRecommendationRepository.FindByProduct(productID, relationship)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(recs)))
	return recs, nil
}

// Update with tracing
func (r *GormRecommendationRepositoryWithTracing) UpdateWithContext(ctx context.Context, rec *domain.Recommendation) error {
	_, span := tracer.Start(ctx, "repository.Update",
		keyAttributes(rec.Key()),
		trace.WithAttributes(attribute.String("recommendation.relationship", rec.Relationship.String())),
	)
	defer span.End()

	err := r.GormRecommendationRepository.Update(rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// IncrementLikes with tracing
func (r *GormRecommendationRepositoryWithTracing) IncrementLikesWithContext(ctx context.Context, key domain.RecommendationKey) (*domain.Recommendation, error) {
	_, span := tracer.Start(ctx, "repository.IncrementLikes", keyAttributes(key))
	defer span.End()

	rec, err := r.GormRecommendationRepository.IncrementLikes(key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int64("recommendation.likes", rec.Likes))
	return rec, nil
}

// IncrementDislikes with tracing
func (r *GormRecommendationRepositoryWithTracing) IncrementDislikesWithContext(ctx context.Context, key domain.RecommendationKey) (*domain.Recommendation, error) {
	_, span := tracer.Start(ctx, "repository.IncrementDislikes", keyAttributes(key))
	defer span.End()

	rec, err := r.GormRecommendationRepository.IncrementDislikes(key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int64("recommendation.dislikes", rec.Dislikes))
	return rec, nil
}

// Delete with tracing
func (r *GormRecommendationRepositoryWithTracing) DeleteWithContext(ctx context.Context, key domain.RecommendationKey) error {
	_, span := tracer.Start(ctx, "repository.Delete", keyAttributes(key))
	defer span.End()

	err := r.GormRecommendationRepository.Delete(key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// DeleteByProduct with tracing
func (r *GormRecommendationRepositoryWithTracing) DeleteByProductWithContext(ctx context.Context, productID int64) (int64, error) {
	_, span := tracer.Start(ctx, "repository.DeleteByProduct",
		trace.WithAttributes(attribute.Int64("query.product_id", productID)),
	)
	defer span.End()

	deleted, err := r.GormRecommendationRepository.DeleteByProduct(productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.deleted", deleted))
	return deleted, nil
}

// Clear with tracing
func (r *GormRecommendationRepositoryWithTracing) ClearWithContext(ctx context.Context) error {
	_, span := tracer.Start(ctx, "repository.Clear")
	defer span.End()

	err := r.GormRecommendationRepository.Clear()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Count with tracing
func (r *GormRecommendationRepositoryWithTracing) CountWithContext(ctx context.Context) (int64, error) {
	_, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.GormRecommendationRepository.Count()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
