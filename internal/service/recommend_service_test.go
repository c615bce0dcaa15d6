package service

import (
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/repository"
	"context"
	"math/rand"
	"testing"
)

type fakeInterestRepo struct {
	repository.InterestRepo
	interests map[uint64][]uint64
}

func (f *fakeInterestRepo) GetInterestTagIDs(_ context.Context, userID uint64) ([]uint64, error) {
	return f.interests[userID], nil
}

type fakeStatsArticleRepo struct {
	repository.ArticleRepo
	stats []*model.ArticleStats
}

func (f *fakeStatsArticleRepo) ListArticleStats(_ context.Context) ([]*model.ArticleStats, error) {
	return f.stats, nil
}

type fakeRatingRepo struct {
	repository.RatingRepo
	rated map[uint64][]uint64
}

func (f *fakeRatingRepo) GetRatedArticleIDs(_ context.Context, userID uint64) ([]uint64, error) {
	return f.rated[userID], nil
}

type fakeRecommendationRepo struct {
	repository.RecommendationRepo
	replaced map[uint64][]*model.Recommendation
}

func (f *fakeRecommendationRepo) ReplaceForUser(_ context.Context, userID uint64, recs []*model.Recommendation) error {
	if f.replaced == nil {
		f.replaced = make(map[uint64][]*model.Recommendation)
	}
	f.replaced[userID] = recs
	return nil
}

func newTestRecommendService(interests map[uint64][]uint64, rated map[uint64][]uint64, stats []*model.ArticleStats, seed int64) (*recommendServiceImpl, *fakeRecommendationRepo) {
	recRepo := &fakeRecommendationRepo{}
	svc := NewRecommendService(
		&fakeInterestRepo{interests: interests},
		&fakeStatsArticleRepo{stats: stats},
		&fakeRatingRepo{rated: rated},
		recRepo,
		rand.New(rand.NewSource(seed)),
	)
	return svc.(*recommendServiceImpl), recRepo
}

func stat(id, author uint64, tags []uint64, avg *float64, count int64) *model.ArticleStats {
	return &model.ArticleStats{ArticleID: id, AuthorID: author, TagIDs: tags, AvgRating: avg, RatingsCount: count}
}

func TestRegenerateScenarioScore(t *testing.T) {
	// 用户兴趣 {10,20,30}，文章命中 2 个标签且均分 4.0
	// 0.7*(2/3) + 0.3*(4/5) = 0.707 -> 0.71
	svc, recRepo := newTestRecommendService(
		map[uint64][]uint64{1: {10, 20, 30}},
		nil,
		[]*model.ArticleStats{
			stat(100, 2, []uint64{10, 20}, util.PtrFloat64(4.0), 8),
		},
		1,
	)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	got := recRepo.replaced[1]
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	if got[0].ArticleID != 100 {
		t.Errorf("ArticleID = %d, want 100", got[0].ArticleID)
	}
	if got[0].Score != 0.71 {
		t.Errorf("Score = %v, want 0.71", got[0].Score)
	}
}

func TestRegenerateExcludesRatedAndAuthored(t *testing.T) {
	svc, recRepo := newTestRecommendService(
		map[uint64][]uint64{1: {10}},
		map[uint64][]uint64{1: {102}},
		[]*model.ArticleStats{
			stat(100, 2, []uint64{10}, nil, 0),
			stat(101, 1, []uint64{10}, util.PtrFloat64(5.0), 3), // 本人创作
			stat(102, 2, []uint64{10}, util.PtrFloat64(5.0), 3), // 已评分
		},
		1,
	)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	got := recRepo.replaced[1]
	for _, rec := range got {
		if rec.ArticleID == 101 || rec.ArticleID == 102 {
			t.Errorf("excluded article %d present in result", rec.ArticleID)
		}
	}
	if len(got) != 1 || got[0].ArticleID != 100 {
		t.Fatalf("expected only article 100, got %v", recIDs(got))
	}
}

func TestRegenerateBudgetAndOrdering(t *testing.T) {
	// 5 个命中候选，只保留分数最高的 4 个，降序排列
	svc, recRepo := newTestRecommendService(
		map[uint64][]uint64{1: {10, 20}},
		nil,
		[]*model.ArticleStats{
			stat(100, 2, []uint64{10, 20}, util.PtrFloat64(5.0), 4),
			stat(101, 2, []uint64{10, 20}, util.PtrFloat64(4.0), 4),
			stat(102, 2, []uint64{10}, util.PtrFloat64(4.0), 4),
			stat(103, 2, []uint64{10}, util.PtrFloat64(3.0), 4),
			stat(104, 2, []uint64{10}, nil, 0),
		},
		1,
	)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	got := recRepo.replaced[1]
	if len(got) != RecommendationLimit {
		t.Fatalf("expected %d recommendations, got %d", RecommendationLimit, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("result not ordered by score desc at index %d: %v > %v", i, got[i].Score, got[i-1].Score)
		}
	}
	// 最低分候选(104, norm=0.2)被挤出
	for _, rec := range got {
		if rec.ArticleID == 104 {
			t.Errorf("lowest scored candidate 104 should be truncated")
		}
	}
}

func TestRegenerateScoreBounds(t *testing.T) {
	svc, recRepo := newTestRecommendService(
		map[uint64][]uint64{1: {10}},
		nil,
		[]*model.ArticleStats{
			stat(100, 2, []uint64{10}, util.PtrFloat64(5.0), 100),
			stat(101, 2, []uint64{10}, util.PtrFloat64(1.0), 1),
			stat(102, 2, []uint64{10}, nil, 0),
			stat(103, 2, []uint64{99}, util.PtrFloat64(5.0), 100),
			stat(104, 2, nil, nil, 0),
		},
		1,
	)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	for _, rec := range recRepo.replaced[1] {
		if rec.Score < 0.1 || rec.Score > 0.99 {
			t.Errorf("score %v of article %d out of [0.1, 0.99]", rec.Score, rec.ArticleID)
		}
	}
}

func TestRegenerateZeroInterestsPureBackfill(t *testing.T) {
	stats := []*model.ArticleStats{
		stat(100, 2, []uint64{10}, util.PtrFloat64(5.0), 10),
		stat(101, 2, []uint64{10}, util.PtrFloat64(4.5), 9),
		stat(102, 2, []uint64{10}, util.PtrFloat64(4.0), 8),
		stat(103, 2, []uint64{10}, util.PtrFloat64(3.5), 7),
		stat(104, 2, []uint64{10}, util.PtrFloat64(3.0), 6),
		stat(105, 2, []uint64{10}, util.PtrFloat64(2.0), 5),
		stat(106, 2, []uint64{10}, nil, 0),
	}
	svc, recRepo := newTestRecommendService(map[uint64][]uint64{}, nil, stats, 42)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	got := recRepo.replaced[1]
	if len(got) != RecommendationLimit {
		t.Fatalf("expected %d backfill recommendations, got %d", RecommendationLimit, len(got))
	}
	for _, rec := range got {
		if rec.Score < 0.1 || rec.Score > 0.5 {
			t.Errorf("backfill score %v of article %d out of [0.1, 0.5]", rec.Score, rec.ArticleID)
		}
	}
}

func TestRegeneratePersonalizationPriority(t *testing.T) {
	// 1 个命中候选 + 人气补位，命中者必须排在补位之前
	svc, recRepo := newTestRecommendService(
		map[uint64][]uint64{1: {10}},
		nil,
		[]*model.ArticleStats{
			stat(100, 2, []uint64{10}, util.PtrFloat64(2.0), 3),
			stat(101, 2, []uint64{99}, util.PtrFloat64(5.0), 50),
			stat(102, 2, []uint64{99}, util.PtrFloat64(4.5), 40),
			stat(103, 2, []uint64{99}, util.PtrFloat64(4.0), 30),
		},
		7,
	)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	got := recRepo.replaced[1]
	if len(got) != RecommendationLimit {
		t.Fatalf("expected %d recommendations, got %d", RecommendationLimit, len(got))
	}
	if got[0].ArticleID != 100 {
		t.Errorf("matched candidate should rank first, got article %d", got[0].ArticleID)
	}
	for _, rec := range got[1:] {
		if rec.Score > 0.5 {
			t.Errorf("backfill score %v exceeds 0.5", rec.Score)
		}
	}
}

func TestRegenerateDeterministicWithSeed(t *testing.T) {
	stats := []*model.ArticleStats{
		stat(100, 2, nil, util.PtrFloat64(5.0), 10),
		stat(101, 2, nil, util.PtrFloat64(4.5), 9),
		stat(102, 2, nil, util.PtrFloat64(4.0), 8),
		stat(103, 2, nil, util.PtrFloat64(3.5), 7),
		stat(104, 2, nil, util.PtrFloat64(3.0), 6),
		stat(105, 2, nil, util.PtrFloat64(2.5), 5),
		stat(106, 2, nil, util.PtrFloat64(2.0), 4),
		stat(107, 2, nil, util.PtrFloat64(1.5), 3),
	}

	svcA, repoA := newTestRecommendService(map[uint64][]uint64{}, nil, stats, 99)
	svcB, repoB := newTestRecommendService(map[uint64][]uint64{}, nil, stats, 99)

	if err := svcA.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if err := svcB.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	gotA, gotB := recIDs(repoA.replaced[1]), recIDs(repoB.replaced[1])
	if len(gotA) != len(gotB) {
		t.Fatalf("result lengths differ: %d vs %d", len(gotA), len(gotB))
	}
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Errorf("results diverge at index %d: %d vs %d", i, gotA[i], gotB[i])
		}
	}
}

func TestRegenerateSkipsMalformedAggregates(t *testing.T) {
	svc, recRepo := newTestRecommendService(
		map[uint64][]uint64{1: {10}},
		nil,
		[]*model.ArticleStats{
			stat(100, 2, []uint64{10}, util.PtrFloat64(4.0), 5),
			stat(101, 2, []uint64{10}, util.PtrFloat64(9.0), 5), // 均分越界
			stat(102, 2, []uint64{10}, util.PtrFloat64(4.0), -1), // 计数为负
		},
		1,
	)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}

	got := recRepo.replaced[1]
	if len(got) != 1 || got[0].ArticleID != 100 {
		t.Fatalf("malformed candidates should be skipped, got %v", recIDs(got))
	}
}

func TestRegenerateConsecutiveRunsIdenticalWithoutSampling(t *testing.T) {
	// 候选池不超过名额时不走抽样，连续两次重建结果完全一致
	stats := []*model.ArticleStats{
		stat(100, 2, nil, util.PtrFloat64(5.0), 10),
		stat(101, 2, nil, util.PtrFloat64(4.0), 8),
		stat(102, 2, nil, util.PtrFloat64(3.0), 6),
		stat(103, 2, nil, nil, 0),
	}
	svc, recRepo := newTestRecommendService(map[uint64][]uint64{}, nil, stats, 5)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("first Regenerate() error = %v", err)
	}
	first := recRepo.replaced[1]

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("second Regenerate() error = %v", err)
	}
	second := recRepo.replaced[1]

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ArticleID != second[i].ArticleID || first[i].Score != second[i].Score {
			t.Errorf("consecutive runs diverge at index %d: (%d, %v) vs (%d, %v)",
				i, first[i].ArticleID, first[i].Score, second[i].ArticleID, second[i].Score)
		}
	}
}

func TestRegenerateResamplesWithinPoolWindow(t *testing.T) {
	// 池子大于名额时允许连续重建抽出不同组合，但永远只在
	// 人气前 2 倍名额的窗口内取，窗口外的候选不会出现
	stats := make([]*model.ArticleStats, 0, 12)
	for i := 0; i < 12; i++ {
		stats = append(stats, stat(uint64(100+i), 2, nil, util.PtrFloat64(5.0-0.1*float64(i)), int64(20-i)))
	}
	svc, recRepo := newTestRecommendService(map[uint64][]uint64{}, nil, stats, 11)

	window := make(map[uint64]struct{})
	for id := uint64(100); id < 108; id++ {
		window[id] = struct{}{}
	}

	for run := 0; run < 2; run++ {
		if err := svc.Regenerate(context.Background(), 1); err != nil {
			t.Fatalf("run %d Regenerate() error = %v", run, err)
		}
		got := recRepo.replaced[1]
		if len(got) != RecommendationLimit {
			t.Fatalf("run %d: expected %d recommendations, got %d", run, RecommendationLimit, len(got))
		}
		for _, rec := range got {
			if _, ok := window[rec.ArticleID]; !ok {
				t.Errorf("run %d: article %d selected from outside the top-8 window", run, rec.ArticleID)
			}
		}
	}
}

func TestRegenerateEmptyCorpus(t *testing.T) {
	svc, recRepo := newTestRecommendService(map[uint64][]uint64{1: {10}}, nil, nil, 1)

	if err := svc.Regenerate(context.Background(), 1); err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if len(recRepo.replaced[1]) != 0 {
		t.Errorf("expected empty result for empty corpus, got %d", len(recRepo.replaced[1]))
	}
}

func recIDs(recs []*model.Recommendation) []uint64 {
	ids := make([]uint64, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ArticleID)
	}
	return ids
}
