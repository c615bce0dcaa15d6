package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepo interface {
	UpsertRating(ctx context.Context, rating *model.Rating) error
	GetRating(ctx context.Context, userID, articleID uint64) (*model.Rating, error)
	GetRatedArticleIDs(ctx context.Context, userID uint64) ([]uint64, error)
	AggregateForArticle(ctx context.Context, articleID uint64) (*float64, int64, error)
}

type ratingRepoImpl struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepo {
	return &ratingRepoImpl{db: db}
}

// UpsertRating 同一 (user, article) 的重复评分走更新
func (r *ratingRepoImpl) UpsertRating(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepoImpl) GetRating(ctx context.Context, userID, articleID uint64) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepoImpl) GetRatedArticleIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

type ratingAggregateRow struct {
	AvgScore *float64
	Total    int64
}

func (r *ratingRepoImpl) AggregateForArticle(ctx context.Context, articleID uint64) (*float64, int64, error) {
	var row ratingAggregateRow
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Select("AVG(score) AS avg_score, COUNT(*) AS total").
		Where("article_id = ?", articleID).
		Scan(&row).Error
	if err != nil {
		return nil, 0, err
	}
	return row.AvgScore, row.Total, nil
}
