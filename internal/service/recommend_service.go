package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/repository"
	"context"
	log "log/slog"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

const (
	// RecommendationLimit 每个用户持久化的推荐条数上限
	RecommendationLimit = 4

	interestWeight  = 0.7
	communityWeight = 0.3
	backfillWeight  = 0.6

	communityFloor = 0.2
	scoreFloor     = 0.1
	scoreCeil      = 0.99
	backfillCeil   = 0.5

	recommendCacheTTL = time.Hour
)

type RecommendService interface {
	GetRecommendations(ctx context.Context, userID uint64) ([]*dto.RecommendationDTO, error)
	Regenerate(ctx context.Context, userID uint64) error
	PurgeCache(ctx context.Context, userID uint64) error
}

type recommendServiceImpl struct {
	interestRepo  repository.InterestRepo
	articleRepo   repository.ArticleRepo
	ratingRepo    repository.RatingRepo
	recommendRepo repository.RecommendationRepo

	// 补位抽样的随机源，注入固定种子即可复现完整榜单
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewRecommendService(
	interestRepo repository.InterestRepo,
	articleRepo repository.ArticleRepo,
	ratingRepo repository.RatingRepo,
	recommendRepo repository.RecommendationRepo,
	rng *rand.Rand,
) RecommendService {
	return &recommendServiceImpl{
		interestRepo:  interestRepo,
		articleRepo:   articleRepo,
		ratingRepo:    ratingRepo,
		recommendRepo: recommendRepo,
		rng:           rng,
	}
}

// scoredCandidate 打分结果，matched 仅用于排序诊断不入库
type scoredCandidate struct {
	articleID uint64
	score     float64
	matched   int
	backfill  bool
}

// GetRecommendations 读取推荐榜单：缓存命中直接返回，
// 缓存失效或落库条数不足时同步触发重建
func (s *recommendServiceImpl) GetRecommendations(ctx context.Context, userID uint64) ([]*dto.RecommendationDTO, error) {
	cacheKey := consts.UserRecommendKey + strconv.FormatUint(userID, 10)

	cached, err := redis.GetValue(ctx, cacheKey)
	if err == nil && cached != "" {
		var list []*dto.RecommendationDTO
		if err = json.Unmarshal([]byte(cached), &list); err == nil {
			return list, nil
		}
	}

	recs, err := s.recommendRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recs) < RecommendationLimit {
		if err = s.Regenerate(ctx, userID); err != nil {
			return nil, err
		}
		recs, err = s.recommendRepo.GetByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	list, err := s.toRecommendationDTOs(ctx, recs)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(list); err == nil {
		_ = redis.SetWithExpiration(ctx, cacheKey, string(payload), recommendCacheTTL)
	}

	return list, nil
}

// Regenerate 全量重建一个用户的推荐集：先算个性化分，不足则人气补位，
// 最终整组替换落库。单个候选的数据异常只跳过该候选，从不中断整次重建。
func (s *recommendServiceImpl) Regenerate(ctx context.Context, userID uint64) error {
	interests, err := s.interestRepo.GetInterestTagIDs(ctx, userID)
	if err != nil {
		return err
	}

	ratedIDs, err := s.ratingRepo.GetRatedArticleIDs(ctx, userID)
	if err != nil {
		return err
	}
	rated := make(map[uint64]struct{}, len(ratedIDs))
	for _, id := range ratedIDs {
		rated[id] = struct{}{}
	}

	stats, err := s.articleRepo.ListArticleStats(ctx)
	if err != nil {
		return err
	}

	// 候选集：剔除已评分与本人创作的文章
	candidates := make([]*model.ArticleStats, 0, len(stats))
	for _, stat := range stats {
		if stat.AuthorID == userID {
			continue
		}
		if _, ok := rated[stat.ArticleID]; ok {
			continue
		}
		candidates = append(candidates, stat)
	}

	interestSet := make(map[uint64]struct{}, len(interests))
	for _, id := range interests {
		interestSet[id] = struct{}{}
	}

	selected := make([]scoredCandidate, 0, RecommendationLimit)
	selectedSet := make(map[uint64]struct{}, RecommendationLimit)

	if len(interestSet) > 0 {
		personalized := make([]scoredCandidate, 0, len(candidates))
		for _, cand := range candidates {
			norm, ok := s.communityNorm(ctx, userID, cand)
			if !ok {
				continue
			}
			matched := 0
			for _, tagID := range cand.TagIDs {
				if _, hit := interestSet[tagID]; hit {
					matched++
				}
			}
			if matched == 0 {
				continue
			}
			interestMatch := float64(matched) / float64(len(interestSet))
			raw := interestWeight*interestMatch + communityWeight*norm
			personalized = append(personalized, scoredCandidate{
				articleID: cand.ArticleID,
				score:     round2(clamp(raw, scoreFloor, scoreCeil)),
				matched:   matched,
			})
		}

		sort.Slice(personalized, func(i, j int) bool {
			if personalized[i].score != personalized[j].score {
				return personalized[i].score > personalized[j].score
			}
			return personalized[i].articleID < personalized[j].articleID
		})

		if len(personalized) > RecommendationLimit {
			personalized = personalized[:RecommendationLimit]
		}
		for _, cand := range personalized {
			selected = append(selected, cand)
			selectedSet[cand.articleID] = struct{}{}
		}
	}

	if need := RecommendationLimit - len(selected); need > 0 {
		selected = append(selected, s.popularityBackfill(ctx, userID, candidates, selectedSet, need)...)
	}

	recs := make([]*model.Recommendation, 0, len(selected))
	for _, cand := range selected {
		recs = append(recs, &model.Recommendation{
			UserID:    userID,
			ArticleID: cand.articleID,
			Score:     cand.score,
		})
	}
	return s.recommendRepo.ReplaceForUser(ctx, userID, recs)
}

// PurgeCache 兴趣变更等写事件发生时同步清除榜单缓存
func (s *recommendServiceImpl) PurgeCache(ctx context.Context, userID uint64) error {
	return redis.DeleteKey(ctx, consts.UserRecommendKey+strconv.FormatUint(userID, 10))
}

// popularityBackfill 人气补位：对未入选候选按 (均分, 评分数) 降序，
// 在至多 2 倍名额的池内随机抽样，补位分恒不超过 0.5
func (s *recommendServiceImpl) popularityBackfill(ctx context.Context, userID uint64, candidates []*model.ArticleStats, selectedSet map[uint64]struct{}, need int) []scoredCandidate {
	pool := make([]*model.ArticleStats, 0, len(candidates))
	for _, cand := range candidates {
		if _, ok := selectedSet[cand.ArticleID]; ok {
			continue
		}
		if _, ok := s.communityNorm(ctx, userID, cand); !ok {
			continue
		}
		pool = append(pool, cand)
	}

	sort.Slice(pool, func(i, j int) bool {
		avgI, avgJ := avgOf(pool[i]), avgOf(pool[j])
		if avgI != avgJ {
			return avgI > avgJ
		}
		if pool[i].RatingsCount != pool[j].RatingsCount {
			return pool[i].RatingsCount > pool[j].RatingsCount
		}
		return pool[i].ArticleID < pool[j].ArticleID
	})

	poolSize := need * 2
	if poolSize > len(pool) {
		poolSize = len(pool)
	}
	pool = pool[:poolSize]

	// 池子比名额大时随机抽样，带来跨次重建的多样性
	if len(pool) > need {
		s.rngMu.Lock()
		s.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		s.rngMu.Unlock()
		pool = pool[:need]
	}

	filled := make([]scoredCandidate, 0, len(pool))
	for _, cand := range pool {
		norm, _ := s.communityNorm(ctx, userID, cand)
		filled = append(filled, scoredCandidate{
			articleID: cand.ArticleID,
			score:     round2(clamp(backfillWeight*norm, scoreFloor, backfillCeil)),
			backfill:  true,
		})
	}

	sort.Slice(filled, func(i, j int) bool {
		if filled[i].score != filled[j].score {
			return filled[i].score > filled[j].score
		}
		return filled[i].articleID < filled[j].articleID
	})
	return filled
}

// communityNorm 社区热度归一：无评分取 0.2 下限，有评分取 max(0.2, 均分/5)。
// 聚合数据异常（均分越界或计数为负）时记录日志并剔除该候选。
func (s *recommendServiceImpl) communityNorm(ctx context.Context, userID uint64, stat *model.ArticleStats) (float64, bool) {
	if stat.RatingsCount < 0 {
		log.WarnContext(ctx, "Recommend: malformed rating aggregate",
			"user_id", userID, "article_id", stat.ArticleID, "ratings_count", stat.RatingsCount)
		return 0, false
	}
	if stat.RatingsCount == 0 || stat.AvgRating == nil {
		return communityFloor, true
	}
	avg := *stat.AvgRating
	if avg < consts.RatingMin || avg > consts.RatingMax {
		log.WarnContext(ctx, "Recommend: malformed rating aggregate",
			"user_id", userID, "article_id", stat.ArticleID, "avg_rating", avg)
		return 0, false
	}
	return math.Max(communityFloor, avg/float64(consts.RatingMax)), true
}

func (s *recommendServiceImpl) toRecommendationDTOs(ctx context.Context, recs []*model.Recommendation) ([]*dto.RecommendationDTO, error) {
	if len(recs) == 0 {
		return []*dto.RecommendationDTO{}, nil
	}

	ids := make([]uint64, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ArticleID)
	}
	articles, err := s.articleRepo.GetArticlesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]*model.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}

	list := make([]*dto.RecommendationDTO, 0, len(recs))
	for _, rec := range recs {
		article, ok := byID[rec.ArticleID]
		if !ok {
			continue
		}
		list = append(list, &dto.RecommendationDTO{
			ArticleID:    rec.ArticleID,
			Title:        article.Title,
			Slug:         article.Slug,
			Score:        rec.Score,
			AvgRating:    article.AvgRating,
			RatingsCount: article.RatingsCount,
		})
	}
	return list, nil
}

func avgOf(stat *model.ArticleStats) float64 {
	if stat.AvgRating == nil {
		return 0
	}
	return *stat.AvgRating
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
