package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/repository"
	"context"
	log "log/slog"
)

type DestinationService interface {
	SyncFromArticle(ctx context.Context, article *model.Article) error
	RemoveForArticle(ctx context.Context, articleID uint64) error
	GetDestinationBySlug(ctx context.Context, slug string) (*dto.DestinationDTO, error)
	ListDestinations(ctx context.Context, req *dto.ListDestinationDTO) ([]*dto.DestinationDTO, error)
	ListContinents(ctx context.Context) ([]*dto.ContinentDTO, error)
}

type destinationServiceImpl struct {
	destinationRepo repository.DestinationRepo
}

func NewDestinationService(destinationRepo repository.DestinationRepo) DestinationService {
	return &destinationServiceImpl{destinationRepo: destinationRepo}
}

// SyncFromArticle 目的地文章发布或更新后同步目的地目录，
// 以 slug 为幂等键，重复同步只做更新
func (s *destinationServiceImpl) SyncFromArticle(ctx context.Context, article *model.Article) error {
	if !article.IsDestination {
		return s.RemoveForArticle(ctx, article.ID)
	}

	if article.ContinentID != nil {
		continent, err := s.destinationRepo.GetContinentByID(ctx, *article.ContinentID)
		if err != nil {
			return err
		}
		if continent == nil {
			return ErrContinentNotFound
		}
	}

	err := s.destinationRepo.UpsertDestination(ctx, &model.Destination{
		Name:        article.Title,
		Slug:        article.Slug,
		ArticleID:   article.ID,
		ContinentID: article.ContinentID,
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "Destination synced", "article_id", article.ID, "slug", article.Slug)
	return nil
}

// RemoveForArticle 文章删除或取消目的地标记时移除对应目的地
func (s *destinationServiceImpl) RemoveForArticle(ctx context.Context, articleID uint64) error {
	return s.destinationRepo.DeleteByArticleID(ctx, articleID)
}

func (s *destinationServiceImpl) GetDestinationBySlug(ctx context.Context, slug string) (*dto.DestinationDTO, error) {
	destination, err := s.destinationRepo.GetDestinationBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, ErrDestinationNotFound
	}
	return toDestinationDTO(destination), nil
}

func (s *destinationServiceImpl) ListDestinations(ctx context.Context, req *dto.ListDestinationDTO) ([]*dto.DestinationDTO, error) {
	destinations, err := s.destinationRepo.ListDestinations(ctx, req.ContinentID, req.Size, req.Offset())
	if err != nil {
		return nil, err
	}
	list := make([]*dto.DestinationDTO, 0, len(destinations))
	for _, destination := range destinations {
		list = append(list, toDestinationDTO(destination))
	}
	return list, nil
}

func (s *destinationServiceImpl) ListContinents(ctx context.Context) ([]*dto.ContinentDTO, error) {
	continents, err := s.destinationRepo.ListContinents(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ContinentDTO, 0, len(continents))
	for _, continent := range continents {
		list = append(list, &dto.ContinentDTO{ID: continent.ID, Name: continent.Name, Code: continent.Slug})
	}
	return list, nil
}

func toDestinationDTO(destination *model.Destination) *dto.DestinationDTO {
	destinationDTO := &dto.DestinationDTO{
		ID:          destination.ID,
		Name:        destination.Name,
		Slug:        destination.Slug,
		ArticleID:   destination.ArticleID,
		ContinentID: destination.ContinentID,
	}
	if destination.Continent != nil {
		destinationDTO.ContinentName = &destination.Continent.Name
	}
	return destinationDTO
}
