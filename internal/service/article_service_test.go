package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/es"
	"context"
	"testing"
	"time"
)

type fakeArticleES struct {
	es.ArticleRepo
	docs     []*es.ArticleES
	lastTag  string
	lastFrom int
	lastSize int
}

func (f *fakeArticleES) GetArticlesByTag(_ context.Context, tag string, from, size int) ([]*es.ArticleES, error) {
	f.lastTag, f.lastFrom, f.lastSize = tag, from, size
	return f.docs, nil
}

func TestGetArticlesByTag(t *testing.T) {
	now := time.Now()
	esRepo := &fakeArticleES{docs: []*es.ArticleES{
		{ID: 101, Title: "Hiking Patagonia", Slug: "hiking-patagonia", Tags: []string{"hiking"}, AvgRating: 4.5, RatingsCount: 6, CreatedAt: now, UpdatedAt: now},
		{ID: 100, Title: "Trails of Nepal", Slug: "trails-of-nepal", Tags: []string{"hiking", "asia"}, CreatedAt: now, UpdatedAt: now},
	}}
	svc := NewArticleService(
		&fakeStatsArticleRepo{},
		&fakeTagRepo{},
		esRepo,
		NewDestinationService(&fakeDestinationRepo{}),
	)

	page := &dto.PageDTO{Page: 2, Size: 10}
	list, err := svc.GetArticlesByTag(context.Background(), "hiking", page)
	if err != nil {
		t.Fatalf("GetArticlesByTag() error = %v", err)
	}

	if esRepo.lastTag != "hiking" {
		t.Errorf("queried tag = %q, want %q", esRepo.lastTag, "hiking")
	}
	if esRepo.lastFrom != page.Offset() || esRepo.lastSize != page.Size {
		t.Errorf("pagination = (%d, %d), want (%d, %d)", esRepo.lastFrom, esRepo.lastSize, page.Offset(), page.Size)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(list))
	}
	// 保持检索层给出的时间倒序
	if list[0].ID != 101 || list[1].ID != 100 {
		t.Errorf("order = [%d %d], want [101 100]", list[0].ID, list[1].ID)
	}
	if list[0].AvgRating == nil || *list[0].AvgRating != 4.5 {
		t.Errorf("AvgRating not carried over: %v", list[0].AvgRating)
	}
	if len(list[1].Tags) != 2 {
		t.Errorf("expected 2 tags on article 100, got %d", len(list[1].Tags))
	}
}
