package service

import (
	"Wayfarer/internal/model"
	"Wayfarer/internal/repository"
	"context"
	"testing"
)

type fakeDestinationRepo struct {
	repository.DestinationRepo
	bySlug     map[string]*model.Destination
	continents map[uint64]*model.Continent
	removed    []uint64
}

func (f *fakeDestinationRepo) UpsertDestination(_ context.Context, destination *model.Destination) error {
	if f.bySlug == nil {
		f.bySlug = make(map[string]*model.Destination)
	}
	f.bySlug[destination.Slug] = destination
	return nil
}

func (f *fakeDestinationRepo) GetContinentByID(_ context.Context, id uint64) (*model.Continent, error) {
	return f.continents[id], nil
}

func (f *fakeDestinationRepo) DeleteByArticleID(_ context.Context, articleID uint64) error {
	f.removed = append(f.removed, articleID)
	return nil
}

func TestSyncFromArticleUpserts(t *testing.T) {
	repo := &fakeDestinationRepo{continents: map[uint64]*model.Continent{1: {ID: 1, Name: "Asia"}}}
	svc := NewDestinationService(repo)

	continentID := uint64(1)
	article := &model.Article{
		ID:            100,
		Title:         "Kyoto",
		Slug:          "kyoto",
		IsDestination: true,
		ContinentID:   &continentID,
	}

	if err := svc.SyncFromArticle(context.Background(), article); err != nil {
		t.Fatalf("SyncFromArticle() error = %v", err)
	}

	destination := repo.bySlug["kyoto"]
	if destination == nil {
		t.Fatal("destination not created")
	}
	if destination.ArticleID != 100 || destination.Name != "Kyoto" {
		t.Errorf("destination = %+v", destination)
	}

	// 重复同步是幂等的更新
	article.Title = "Kyoto, Japan"
	if err := svc.SyncFromArticle(context.Background(), article); err != nil {
		t.Fatalf("second SyncFromArticle() error = %v", err)
	}
	if len(repo.bySlug) != 1 {
		t.Errorf("expected 1 destination after resync, got %d", len(repo.bySlug))
	}
	if repo.bySlug["kyoto"].Name != "Kyoto, Japan" {
		t.Errorf("resync should update name, got %q", repo.bySlug["kyoto"].Name)
	}
}

func TestSyncFromArticleUnknownContinent(t *testing.T) {
	repo := &fakeDestinationRepo{}
	svc := NewDestinationService(repo)

	continentID := uint64(42)
	article := &model.Article{ID: 100, Title: "Atlantis", Slug: "atlantis", IsDestination: true, ContinentID: &continentID}

	if err := svc.SyncFromArticle(context.Background(), article); err != ErrContinentNotFound {
		t.Fatalf("SyncFromArticle() error = %v, want ErrContinentNotFound", err)
	}
}

func TestSyncFromArticleRemovesWhenUnflagged(t *testing.T) {
	repo := &fakeDestinationRepo{}
	svc := NewDestinationService(repo)

	article := &model.Article{ID: 100, Title: "Kyoto", Slug: "kyoto", IsDestination: false}
	if err := svc.SyncFromArticle(context.Background(), article); err != nil {
		t.Fatalf("SyncFromArticle() error = %v", err)
	}
	if len(repo.removed) != 1 || repo.removed[0] != 100 {
		t.Errorf("expected destination removal for article 100, got %v", repo.removed)
	}
}
