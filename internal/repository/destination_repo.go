package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DestinationRepo interface {
	UpsertDestination(ctx context.Context, destination *model.Destination) error
	GetDestinationBySlug(ctx context.Context, slug string) (*model.Destination, error)
	ListDestinations(ctx context.Context, continentID *uint64, limit, offset int) ([]*model.Destination, error)
	DeleteByArticleID(ctx context.Context, articleID uint64) error
	ListContinents(ctx context.Context) ([]*model.Continent, error)
	GetContinentByID(ctx context.Context, id uint64) (*model.Continent, error)
}

type destinationRepoImpl struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepo {
	return &destinationRepoImpl{db: db}
}

// UpsertDestination 以 slug 为幂等键，同名目的地重复同步只更新
func (r *destinationRepoImpl) UpsertDestination(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "article_id", "continent_id", "updated_at"}),
	}).Create(destination).Error
}

func (r *destinationRepoImpl) GetDestinationBySlug(ctx context.Context, slug string) (*model.Destination, error) {
	var destination model.Destination
	err := r.db.WithContext(ctx).Preload("Continent").
		Where("slug = ?", slug).First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepoImpl) ListDestinations(ctx context.Context, continentID *uint64, limit, offset int) ([]*model.Destination, error) {
	query := r.db.WithContext(ctx).Preload("Continent")
	if continentID != nil {
		query = query.Where("continent_id = ?", *continentID)
	}
	var destinations []*model.Destination
	err := query.Order("name").Limit(limit).Offset(offset).Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepoImpl) DeleteByArticleID(ctx context.Context, articleID uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Destination{}, "article_id = ?", articleID).Error
}

func (r *destinationRepoImpl) ListContinents(ctx context.Context) ([]*model.Continent, error) {
	var continents []*model.Continent
	err := r.db.WithContext(ctx).Order("name").Find(&continents).Error
	if err != nil {
		return nil, err
	}
	return continents, nil
}

func (r *destinationRepoImpl) GetContinentByID(ctx context.Context, id uint64) (*model.Continent, error) {
	var continent model.Continent
	err := r.db.WithContext(ctx).First(&continent, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &continent, nil
}
