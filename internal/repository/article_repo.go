package repository

import (
	"Wayfarer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ArticleRepo interface {
	CreateArticle(ctx context.Context, article *model.Article, tags []*model.ArticleTag) error
	GetArticle(ctx context.Context, id uint64) (*model.Article, error)
	GetArticlesByIDs(ctx context.Context, ids []uint64) ([]*model.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error)
	GetArticlesByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Article, error)
	UpdateArticle(ctx context.Context, article *model.Article, tags []*model.ArticleTag) error
	UpdateRatingAggregate(ctx context.Context, articleID uint64, avg *float64, count int64) error
	DeleteArticle(ctx context.Context, id uint64) error
	ListArticleStats(ctx context.Context) ([]*model.ArticleStats, error)
}

type articleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepo {
	return &articleRepoImpl{db: db}
}

func (r *articleRepoImpl) CreateArticle(ctx context.Context, article *model.Article, tags []*model.ArticleTag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Author").Create(article).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			tag.ArticleID = article.ID
		}
		if len(tags) > 0 {
			if err := tx.Create(tags).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *articleRepoImpl) GetArticle(ctx context.Context, id uint64) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).Preload("Author").Preload("Tags").
		Where("is_deleted = 0").First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepoImpl) GetArticlesByIDs(ctx context.Context, ids []uint64) ([]*model.Article, error) {
	var articles []*model.Article
	err := r.db.WithContext(ctx).Preload("Author").Preload("Tags").
		Where("id IN ? AND is_deleted = 0", ids).Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepoImpl) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).Preload("Author").Preload("Tags").
		Where("slug = ? AND is_deleted = 0", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepoImpl) GetArticlesByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Article, error) {
	var articles []*model.Article
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("author_id = ? AND is_deleted = 0", authorID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepoImpl) UpdateArticle(ctx context.Context, article *model.Article, tags []*model.ArticleTag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Author").Updates(article).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.ArticleTag{}, "article_id = ?", article.ID).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Create(tags).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRatingAggregate 回填冗余评分聚合列，由 ArticleMetricJob 调用
func (r *articleRepoImpl) UpdateRatingAggregate(ctx context.Context, articleID uint64, avg *float64, count int64) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", articleID).
		Updates(map[string]interface{}{"avg_rating": avg, "ratings_count": count}).Error
}

func (r *articleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Update("is_deleted", true).Error
}

type articleStatsRow struct {
	ArticleID    uint64
	AuthorID     uint64
	AvgRating    *float64
	RatingsCount int64
}

// ListArticleStats 返回全量文章的推荐候选视图：作者、标签集与实时评分聚合
func (r *articleRepoImpl) ListArticleStats(ctx context.Context) ([]*model.ArticleStats, error) {
	var rows []articleStatsRow
	err := r.db.WithContext(ctx).Table("articles").
		Select("articles.id AS article_id, articles.author_id, AVG(ratings.score) AS avg_rating, COUNT(ratings.user_id) AS ratings_count").
		Joins("LEFT JOIN ratings ON ratings.article_id = articles.id").
		Where("articles.is_deleted = 0").
		Group("articles.id, articles.author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ArticleID)
	}

	var tagRows []model.ArticleTag
	err = r.db.WithContext(ctx).Where("article_id IN ?", ids).Find(&tagRows).Error
	if err != nil {
		return nil, err
	}

	tagsByArticle := make(map[uint64][]uint64, len(rows))
	for _, tagRow := range tagRows {
		tagsByArticle[tagRow.ArticleID] = append(tagsByArticle[tagRow.ArticleID], tagRow.TagID)
	}

	stats := make([]*model.ArticleStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &model.ArticleStats{
			ArticleID:    row.ArticleID,
			AuthorID:     row.AuthorID,
			TagIDs:       tagsByArticle[row.ArticleID],
			AvgRating:    row.AvgRating,
			RatingsCount: row.RatingsCount,
		})
	}
	return stats, nil
}
