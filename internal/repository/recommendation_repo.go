package repository

import (
	"Wayfarer/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type RecommendationRepo interface {
	GetByUser(ctx context.Context, userID uint64) ([]*model.Recommendation, error)
	ReplaceForUser(ctx context.Context, userID uint64, recs []*model.Recommendation) error
	DeleteForUser(ctx context.Context, userID uint64) error
}

type recommendationRepoImpl struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepo {
	return &recommendationRepoImpl{db: db}
}

func (r *recommendationRepoImpl) GetByUser(ctx context.Context, userID uint64) ([]*model.Recommendation, error) {
	var recs []*model.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("score DESC, article_id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ReplaceForUser 在同一事务内先删后插，读端不会看到半新半旧的榜单
func (r *recommendationRepoImpl) ReplaceForUser(ctx context.Context, userID uint64, recs []*model.Recommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Recommendation{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		now := time.Now()
		for _, rec := range recs {
			rec.UserID = userID
			rec.CreatedAt = now
		}
		return tx.Create(recs).Error
	})
}

func (r *recommendationRepoImpl) DeleteForUser(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Recommendation{}, "user_id = ?", userID).Error
}
