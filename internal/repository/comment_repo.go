package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByArticleID(ctx context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, id uint64) error
}

type commentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &commentRepoImpl{db: db}
}

func (r *commentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).Where("is_deleted = 0").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepoImpl) GetCommentsByArticleID(ctx context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ? AND is_deleted = 0", articleID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("is_deleted", true).Error
}
