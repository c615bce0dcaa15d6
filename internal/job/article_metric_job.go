package job

import (
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/es"
	"Wayfarer/internal/pkg/logger"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ArticleMetricJob 定时回刷评分聚合：评分写路径只把文章标脏，
// 这里统一从 ratings 表重算均分与计数，写回文章冗余列和检索索引
type ArticleMetricJob struct {
	articleRepo repository.ArticleRepo
	ratingRepo  repository.RatingRepo
	articleES   es.ArticleRepo
}

func NewArticleMetricJob(
	articleRepo repository.ArticleRepo,
	ratingRepo repository.RatingRepo,
	articleES es.ArticleRepo,
) *ArticleMetricJob {
	return &ArticleMetricJob{
		articleRepo: articleRepo,
		ratingRepo:  ratingRepo,
		articleES:   articleES,
	}
}

func (s *ArticleMetricJob) Run() {
	traceID := "job-article-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 脏集改名为 processing，窗口期内的新评分落到下一轮
	processingKey := consts.ArticleRatingDirty + ":processing"
	err := redis.Rename(ctx, consts.ArticleRatingDirty, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get article dirty set error", "err", err)
		return
	}

	articleIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert article set to int slice error", "err", err)
		return
	}

	synced := 0
	for _, aid := range articleIDs {
		if err = s.syncArticle(ctx, aid); err != nil {
			log.ErrorContext(ctx, "sync article metrics error", "aid", aid, "err", err)
			continue
		}
		synced++
	}

	if err = redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete article processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync article metrics success",
		"dirty_count", len(articleIDs),
		"synced_count", synced)
}

func (s *ArticleMetricJob) syncArticle(ctx context.Context, aid uint64) error {
	avg, count, err := s.ratingRepo.AggregateForArticle(ctx, aid)
	if err != nil {
		return errors.Wrap(err, "aggregate article ratings")
	}

	if err = s.articleRepo.UpdateRatingAggregate(ctx, aid, avg, count); err != nil {
		return errors.Wrap(err, "update article rating aggregate")
	}

	avgValue := 0.0
	if avg != nil {
		avgValue = *avg
	}
	if err = s.articleES.UpdateRatingAggregate(ctx, aid, avgValue, count); err != nil {
		return errors.Wrap(err, "update article es aggregate")
	}
	return nil
}
