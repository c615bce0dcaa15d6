package repository

import (
	"Wayfarer/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type InterestRepo interface {
	GetInterestTagIDs(ctx context.Context, userID uint64) ([]uint64, error)
	ReplaceInterests(ctx context.Context, userID uint64, tagIDs []uint64) error
}

type interestRepoImpl struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepo {
	return &interestRepoImpl{db: db}
}

// GetInterestTagIDs 无画像的用户返回空集而非错误
func (r *interestRepoImpl) GetInterestTagIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.ProfileInterest{}).
		Where("user_id = ?", userID).
		Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceInterests 整组覆盖用户兴趣标签
func (r *interestRepoImpl) ReplaceInterests(ctx context.Context, userID uint64, tagIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ProfileInterest{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		interests := make([]*model.ProfileInterest, 0, len(tagIDs))
		now := time.Now()
		for _, tagID := range tagIDs {
			interests = append(interests, &model.ProfileInterest{
				UserID:    userID,
				TagID:     tagID,
				CreatedAt: now,
			})
		}
		if len(interests) == 0 {
			return nil
		}
		return tx.Create(interests).Error
	})
}
