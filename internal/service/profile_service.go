package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/repository"
	"context"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	UpdateInterests(ctx context.Context, userID uint64, req *dto.UpdateInterestsDTO) error
}

type profileServiceImpl struct {
	userRepo         repository.UserRepo
	interestRepo     repository.InterestRepo
	tagRepo          repository.TagRepo
	recommendService RecommendService
}

func NewProfileService(
	userRepo repository.UserRepo,
	interestRepo repository.InterestRepo,
	tagRepo repository.TagRepo,
	recommendService RecommendService,
) ProfileService {
	return &profileServiceImpl{
		userRepo:         userRepo,
		interestRepo:     interestRepo,
		tagRepo:          tagRepo,
		recommendService: recommendService,
	}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDelete {
		return nil, ErrUserNotFound
	}

	tagIDs, err := s.interestRepo.GetInterestTagIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	interests := make([]*dto.TagDTO, 0, len(tagIDs))
	if len(tagIDs) > 0 {
		tags, err := s.tagRepo.GetTagsByIDs(ctx, tagIDs)
		if err != nil {
			return nil, err
		}
		for _, tag := range tags {
			interests = append(interests, &dto.TagDTO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
		}
	}

	return &dto.ProfileDTO{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Interests: interests,
	}, nil
}

// UpdateInterests 整组覆盖兴趣标签。兴趣实际发生变化时，
// 在同一请求内同步清缓存并重建推荐，保证读端不会拿到陈旧榜单。
func (s *profileServiceImpl) UpdateInterests(ctx context.Context, userID uint64, req *dto.UpdateInterestsDTO) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.IsDelete {
		return ErrUserNotFound
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.tagRepo.GetTagsByIDs(ctx, req.TagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(dedup(req.TagIDs)) {
			return ErrTagNotFound
		}
	}

	current, err := s.interestRepo.GetInterestTagIDs(ctx, userID)
	if err != nil {
		return err
	}
	if util.Uint64SetEqual(current, req.TagIDs) {
		return nil
	}

	if err = s.interestRepo.ReplaceInterests(ctx, userID, dedup(req.TagIDs)); err != nil {
		return err
	}

	if err = s.recommendService.PurgeCache(ctx, userID); err != nil {
		return err
	}
	return s.recommendService.Regenerate(ctx, userID)
}

func dedup(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
