package repository

import (
	"sync"

	"github.com/tair/recommendation-service/internal/recommendation/domain"
)

// MemoryRecommendationRepository is a mutex-guarded in-memory
// implementation of the repository contract. It backs unit tests and
// local development without a database.
type MemoryRecommendationRepository struct {
	mu   sync.RWMutex
	recs map[domain.RecommendationKey]domain.Recommendation
}

func NewMemoryRecommendationRepository() *MemoryRecommendationRepository {
	return &MemoryRecommendationRepository{
		recs: make(map[domain.RecommendationKey]domain.Recommendation),
	}
}

func (r *MemoryRecommendationRepository) Create(rec *domain.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rec.Key()
	if _, exists := r.recs[key]; exists {
		return domain.ErrDuplicateKey
	}

	// Storage-layer default, mirroring the column default
	if rec.Relationship == "" {
		rec.Relationship = domain.GoTogether
	}

	r.recs[key] = *rec
	return nil
}

func (r *MemoryRecommendationRepository) FindByKey(key domain.RecommendationKey) (*domain.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.recs[key]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *MemoryRecommendationRepository) FindAll() ([]domain.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]domain.Recommendation, 0, len(r.recs))
	for _, rec := range r.recs {
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *MemoryRecommendationRepository) FindByProduct(productID int64, relationship *domain.RelationshipType) ([]domain.Recommendation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]domain.Recommendation, 0)
	for _, rec := range r.recs {
		if rec.ProductID != productID {
			continue
		}
		if relationship != nil && rec.Relationship != *relationship {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *MemoryRecommendationRepository) Update(rec *domain.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recs[rec.Key()] = *rec
	return nil
}

func (r *MemoryRecommendationRepository) IncrementLikes(key domain.RecommendationKey) (*domain.Recommendation, error) {
	return r.increment(key, func(rec *domain.Recommendation) { rec.Likes++ })
}

func (r *MemoryRecommendationRepository) IncrementDislikes(key domain.RecommendationKey) (*domain.Recommendation, error) {
	return r.increment(key, func(rec *domain.Recommendation) { rec.Dislikes++ })
}

func (r *MemoryRecommendationRepository) increment(key domain.RecommendationKey, bump func(*domain.Recommendation)) (*domain.Recommendation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.recs[key]
	if !exists {
		return nil, domain.ErrNotFound
	}

	bump(&rec)
	r.recs[key] = rec
	return &rec, nil
}

func (r *MemoryRecommendationRepository) Delete(key domain.RecommendationKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.recs, key)
	return nil
}

func (r *MemoryRecommendationRepository) DeleteByProduct(productID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for key := range r.recs {
		if key.ProductID == productID || key.RecommendationProductID == productID {
			delete(r.recs, key)
			deleted++
		}
	}
	return deleted, nil
}

func (r *MemoryRecommendationRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recs = make(map[domain.RecommendationKey]domain.Recommendation)
	return nil
}

func (r *MemoryRecommendationRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.recs)), nil
}

func (r *MemoryRecommendationRepository) CountByRelationship() (map[domain.RelationshipType]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[domain.RelationshipType]int64)
	for _, rec := range r.recs {
		counts[rec.Relationship]++
	}
	return counts, nil
}
