package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type ArticleActionService interface {
	RateArticle(ctx context.Context, userID, articleID uint64, req *dto.RateArticleDTO) error
	GetMyRating(ctx context.Context, userID, articleID uint64) (*dto.RatingDTO, error)
	CreateComment(ctx context.Context, userID, articleID uint64, req *dto.CreateCommentDTO) error
	DeleteComment(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error
	GetComments(ctx context.Context, articleID uint64, page *dto.PageDTO) ([]*dto.CommentDTO, error)
}

type articleActionServiceImpl struct {
	ratingRepo          repository.RatingRepo
	commentRepo         repository.CommentRepo
	articleRepo         repository.ArticleRepo
	notificationService NotificationService
}

func NewArticleActionService(
	ratingRepo repository.RatingRepo,
	commentRepo repository.CommentRepo,
	articleRepo repository.ArticleRepo,
	notificationService NotificationService,
) ArticleActionService {
	return &articleActionServiceImpl{
		ratingRepo:          ratingRepo,
		commentRepo:         commentRepo,
		articleRepo:         articleRepo,
		notificationService: notificationService,
	}
}

// RateArticle 评分 1-5，同一用户对同一文章只保留最新一条。
// 文章进脏集后由 ArticleMetricJob 统一回刷聚合，不在写路径上实时计算。
func (s *articleActionServiceImpl) RateArticle(ctx context.Context, userID, articleID uint64, req *dto.RateArticleDTO) error {
	if req.Score < consts.RatingMin || req.Score > consts.RatingMax {
		return ErrRatingOutOfRange
	}

	article, err := s.articleRepo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if article.AuthorID == userID {
		return ErrRateOwnArticle
	}

	err = s.ratingRepo.UpsertRating(ctx, &model.Rating{
		UserID:    userID,
		ArticleID: articleID,
		Score:     req.Score,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	if err = redis.SAdd(ctx, consts.ArticleRatingDirty, articleID); err != nil {
		log.ErrorContext(ctx, "Rating: mark dirty failed", "article_id", articleID, "err", err)
	}

	if err = s.notificationService.NotifyRating(ctx, article.AuthorID, userID, articleID, article.Title, req.Score); err != nil {
		log.ErrorContext(ctx, "Rating: notify failed", "article_id", articleID, "err", err)
	}
	return nil
}

func (s *articleActionServiceImpl) GetMyRating(ctx context.Context, userID, articleID uint64) (*dto.RatingDTO, error) {
	rating, err := s.ratingRepo.GetRating(ctx, userID, articleID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, nil
	}
	return &dto.RatingDTO{
		UserID:    rating.UserID,
		ArticleID: rating.ArticleID,
		Score:     rating.Score,
		CreatedAt: rating.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *articleActionServiceImpl) CreateComment(ctx context.Context, userID, articleID uint64, req *dto.CreateCommentDTO) error {
	article, err := s.articleRepo.GetArticle(ctx, articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	err = s.commentRepo.CreateComment(ctx, &model.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	if err = s.notificationService.NotifyComment(ctx, article.AuthorID, userID, articleID, article.Title, req.Content); err != nil {
		log.ErrorContext(ctx, "Comment: notify failed", "article_id", articleID, "err", err)
	}
	return nil
}

func (s *articleActionServiceImpl) DeleteComment(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return UnauthorizedError
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}

func (s *articleActionServiceImpl) GetComments(ctx context.Context, articleID uint64, page *dto.PageDTO) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.GetCommentsByArticleID(ctx, articleID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		list = append(list, &dto.CommentDTO{
			ID:        comment.ID,
			ArticleID: comment.ArticleID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		})
	}
	return list, nil
}
