package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/repository"
	"context"
)

type TagService interface {
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		list = append(list, &dto.TagDTO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return list, nil
}
