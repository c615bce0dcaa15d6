package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/repository"
	"context"
	"testing"
)

type fakeUserRepo struct {
	repository.UserRepo
	users map[uint64]*model.User
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

type fakeTagRepo struct {
	repository.TagRepo
	tags map[uint64]*model.Tag
}

func (f *fakeTagRepo) GetTagsByIDs(_ context.Context, ids []uint64) ([]*model.Tag, error) {
	result := make([]*model.Tag, 0, len(ids))
	for _, id := range ids {
		if tag, ok := f.tags[id]; ok {
			result = append(result, tag)
		}
	}
	return result, nil
}

type fakeInterestStore struct {
	repository.InterestRepo
	interests map[uint64][]uint64
	replaced  [][]uint64
}

func (f *fakeInterestStore) GetInterestTagIDs(_ context.Context, userID uint64) ([]uint64, error) {
	return f.interests[userID], nil
}

func (f *fakeInterestStore) ReplaceInterests(_ context.Context, userID uint64, tagIDs []uint64) error {
	f.interests[userID] = tagIDs
	f.replaced = append(f.replaced, tagIDs)
	return nil
}

type fakeRecommendService struct {
	purged      int
	regenerated int
}

func (f *fakeRecommendService) GetRecommendations(_ context.Context, _ uint64) ([]*dto.RecommendationDTO, error) {
	return nil, nil
}

func (f *fakeRecommendService) Regenerate(_ context.Context, _ uint64) error {
	f.regenerated++
	return nil
}

func (f *fakeRecommendService) PurgeCache(_ context.Context, _ uint64) error {
	f.purged++
	return nil
}

func newTestProfileService(currentInterests []uint64) (ProfileService, *fakeInterestStore, *fakeRecommendService) {
	interestStore := &fakeInterestStore{interests: map[uint64][]uint64{1: currentInterests}}
	recommendSvc := &fakeRecommendService{}
	svc := NewProfileService(
		&fakeUserRepo{users: map[uint64]*model.User{1: {ID: 1, Email: "traveler@example.com"}}},
		interestStore,
		&fakeTagRepo{tags: map[uint64]*model.Tag{
			10: {ID: 10, Name: "hiking", Slug: "hiking"},
			20: {ID: 20, Name: "beaches", Slug: "beaches"},
			30: {ID: 30, Name: "food", Slug: "food"},
		}},
		recommendSvc,
	)
	return svc, interestStore, recommendSvc
}

func TestUpdateInterestsTriggersRegeneration(t *testing.T) {
	svc, store, recommendSvc := newTestProfileService([]uint64{10})

	err := svc.UpdateInterests(context.Background(), 1, &dto.UpdateInterestsDTO{TagIDs: []uint64{10, 20}})
	if err != nil {
		t.Fatalf("UpdateInterests() error = %v", err)
	}

	if len(store.replaced) != 1 {
		t.Fatalf("interests should be replaced once, got %d", len(store.replaced))
	}
	if recommendSvc.purged != 1 {
		t.Errorf("cache purge count = %d, want 1", recommendSvc.purged)
	}
	if recommendSvc.regenerated != 1 {
		t.Errorf("regenerate count = %d, want 1", recommendSvc.regenerated)
	}
}

func TestUpdateInterestsNoopWhenUnchanged(t *testing.T) {
	svc, store, recommendSvc := newTestProfileService([]uint64{10, 20})

	// 顺序不同但集合一致，不应触发重建
	err := svc.UpdateInterests(context.Background(), 1, &dto.UpdateInterestsDTO{TagIDs: []uint64{20, 10}})
	if err != nil {
		t.Fatalf("UpdateInterests() error = %v", err)
	}

	if len(store.replaced) != 0 {
		t.Errorf("interests should not be replaced, got %d replacements", len(store.replaced))
	}
	if recommendSvc.purged != 0 || recommendSvc.regenerated != 0 {
		t.Errorf("no cache purge or regeneration expected, got purged=%d regenerated=%d",
			recommendSvc.purged, recommendSvc.regenerated)
	}
}

func TestUpdateInterestsUnknownTag(t *testing.T) {
	svc, _, recommendSvc := newTestProfileService(nil)

	err := svc.UpdateInterests(context.Background(), 1, &dto.UpdateInterestsDTO{TagIDs: []uint64{999}})
	if err != ErrTagNotFound {
		t.Fatalf("UpdateInterests() error = %v, want ErrTagNotFound", err)
	}
	if recommendSvc.regenerated != 0 {
		t.Errorf("regeneration must not run on validation failure")
	}
}

func TestUpdateInterestsClearAll(t *testing.T) {
	svc, store, recommendSvc := newTestProfileService([]uint64{10, 20})

	err := svc.UpdateInterests(context.Background(), 1, &dto.UpdateInterestsDTO{TagIDs: []uint64{}})
	if err != nil {
		t.Fatalf("UpdateInterests() error = %v", err)
	}

	if len(store.interests[1]) != 0 {
		t.Errorf("interests should be cleared, got %v", store.interests[1])
	}
	if recommendSvc.regenerated != 1 {
		t.Errorf("clearing interests should still trigger regeneration")
	}
}

func TestGetProfileIncludesInterests(t *testing.T) {
	svc, _, _ := newTestProfileService([]uint64{10, 30})

	profile, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Email != "traveler@example.com" {
		t.Errorf("Email = %q", profile.Email)
	}
	if len(profile.Interests) != 2 {
		t.Fatalf("expected 2 interests, got %d", len(profile.Interests))
	}
}

func TestGetProfileUserNotFound(t *testing.T) {
	svc, _, _ := newTestProfileService(nil)

	_, err := svc.GetProfile(context.Background(), 404)
	if err != ErrUserNotFound {
		t.Fatalf("GetProfile() error = %v, want ErrUserNotFound", err)
	}
}
