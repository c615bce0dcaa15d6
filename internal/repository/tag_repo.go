package repository

import (
	"Wayfarer/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo interface {
	GetOrCreateTags(ctx context.Context, tags []*model.Tag) ([]*model.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []uint64) ([]*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{db: db}
}

func (r *tagRepoImpl) GetOrCreateTags(ctx context.Context, tags []*model.Tag) ([]*model.Tag, error) {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag.CreatedAt = time.Now()
		names = append(names, tag.Name)

		// 使用 OnConflict DoNothing 避免重复创建
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(tag).Error
		if err != nil {
			return nil, err
		}
	}

	// 查询所有请求的标签，拿到已存在记录的完整数据
	var result []*model.Tag
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *tagRepoImpl) GetTagsByIDs(ctx context.Context, ids []uint64) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepoImpl) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := r.db.WithContext(ctx).Order("name").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
