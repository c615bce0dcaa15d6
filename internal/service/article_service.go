package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/model"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/es"
	"Wayfarer/internal/pkg/redis"
	"Wayfarer/internal/pkg/util"
	"Wayfarer/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID uint64, req *dto.ArticleBaseDTO) (uint64, error)
	GetArticle(ctx context.Context, id uint64) (*dto.ArticleDTO, error)
	GetArticleBySlug(ctx context.Context, slug string) (*dto.ArticleDTO, error)
	GetArticlesByAuthor(ctx context.Context, authorID uint64, page *dto.PageDTO) ([]*dto.ArticleDTO, error)
	UpdateArticle(ctx context.Context, userID uint64, isAdmin bool, req *dto.ArticleBaseDTO) error
	DeleteArticle(ctx context.Context, userID uint64, isAdmin bool, id uint64) error
	SearchArticles(ctx context.Context, req *dto.SearchArticleDTO) ([]*dto.ArticleDTO, error)
	GetArticlesByTag(ctx context.Context, tag string, page *dto.PageDTO) ([]*dto.ArticleDTO, error)
	GetLatestArticles(ctx context.Context, page *dto.PageDTO) ([]*dto.ArticleDTO, error)
}

type articleServiceImpl struct {
	articleRepo        repository.ArticleRepo
	tagRepo            repository.TagRepo
	articleES          es.ArticleRepo
	destinationService DestinationService
}

func NewArticleService(
	articleRepo repository.ArticleRepo,
	tagRepo repository.TagRepo,
	articleES es.ArticleRepo,
	destinationService DestinationService,
) ArticleService {
	return &articleServiceImpl{
		articleRepo:        articleRepo,
		tagRepo:            tagRepo,
		articleES:          articleES,
		destinationService: destinationService,
	}
}

func (s *articleServiceImpl) CreateArticle(ctx context.Context, authorID uint64, req *dto.ArticleBaseDTO) (uint64, error) {
	existing, err := s.articleRepo.GetArticleBySlug(ctx, req.Slug)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrSlugExist
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return 0, err
	}

	article := &model.Article{
		AuthorID:      authorID,
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		IsDestination: req.IsDestination,
		ContinentID:   req.ContinentID,
	}

	articleTags := make([]*model.ArticleTag, 0, len(tags))
	for _, tag := range tags {
		articleTags = append(articleTags, &model.ArticleTag{TagID: tag.ID})
	}

	if err = s.articleRepo.CreateArticle(ctx, article, articleTags); err != nil {
		// 并发发布撞 slug 唯一索引
		if isDuplicateError(err) {
			return 0, ErrSlugExist
		}
		return 0, err
	}

	s.indexArticle(ctx, article, tags)
	s.syncDestination(ctx, article)

	return article.ID, nil
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, id uint64) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	s.countView(ctx, article.ID)
	return toArticleDTO(article), nil
}

func (s *articleServiceImpl) GetArticleBySlug(ctx context.Context, slug string) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	s.countView(ctx, article.ID)
	return toArticleDTO(article), nil
}

func (s *articleServiceImpl) GetArticlesByAuthor(ctx context.Context, authorID uint64, page *dto.PageDTO) ([]*dto.ArticleDTO, error) {
	articles, err := s.articleRepo.GetArticlesByAuthor(ctx, authorID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ArticleDTO, 0, len(articles))
	for _, article := range articles {
		list = append(list, toArticleDTO(article))
	}
	return list, nil
}

func (s *articleServiceImpl) UpdateArticle(ctx context.Context, userID uint64, isAdmin bool, req *dto.ArticleBaseDTO) error {
	article, err := s.articleRepo.GetArticle(ctx, req.ID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if article.AuthorID != userID && !isAdmin {
		return ErrArticleNotOwned
	}

	if req.Slug != article.Slug {
		existing, err := s.articleRepo.GetArticleBySlug(ctx, req.Slug)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != article.ID {
			return ErrSlugExist
		}
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return err
	}

	// 取消目的地标记时需要先清掉旧目录项
	wasDestination := article.IsDestination

	article.Title = req.Title
	article.Slug = req.Slug
	article.Content = req.Content
	article.IsDestination = req.IsDestination
	article.ContinentID = req.ContinentID

	articleTags := make([]*model.ArticleTag, 0, len(tags))
	for _, tag := range tags {
		articleTags = append(articleTags, &model.ArticleTag{ArticleID: article.ID, TagID: tag.ID})
	}

	if err = s.articleRepo.UpdateArticle(ctx, article, articleTags); err != nil {
		if isDuplicateError(err) {
			return ErrSlugExist
		}
		return err
	}

	s.indexArticle(ctx, article, tags)
	if wasDestination || article.IsDestination {
		s.syncDestination(ctx, article)
	}
	return nil
}

func (s *articleServiceImpl) DeleteArticle(ctx context.Context, userID uint64, isAdmin bool, id uint64) error {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if article.AuthorID != userID && !isAdmin {
		return ErrArticleNotOwned
	}

	if err = s.articleRepo.DeleteArticle(ctx, id); err != nil {
		return err
	}

	if err = s.articleES.DeleteArticle(ctx, id); err != nil {
		log.ErrorContext(ctx, "Article: ES delete failed", "article_id", id, "err", err)
	}
	if err = s.destinationService.RemoveForArticle(ctx, id); err != nil {
		log.ErrorContext(ctx, "Article: destination cleanup failed", "article_id", id, "err", err)
	}
	return nil
}

func (s *articleServiceImpl) SearchArticles(ctx context.Context, req *dto.SearchArticleDTO) ([]*dto.ArticleDTO, error) {
	docs, err := s.articleES.SearchArticles(ctx, req.Keyword, req.Offset(), req.Size)
	if err != nil {
		return nil, err
	}
	return s.docsToDTOs(docs), nil
}

func (s *articleServiceImpl) GetArticlesByTag(ctx context.Context, tag string, page *dto.PageDTO) ([]*dto.ArticleDTO, error) {
	docs, err := s.articleES.GetArticlesByTag(ctx, tag, page.Offset(), page.Size)
	if err != nil {
		return nil, err
	}
	return s.docsToDTOs(docs), nil
}

func (s *articleServiceImpl) GetLatestArticles(ctx context.Context, page *dto.PageDTO) ([]*dto.ArticleDTO, error) {
	docs, err := s.articleES.GetLatestArticles(ctx, page.Offset(), page.Size)
	if err != nil {
		return nil, err
	}
	return s.docsToDTOs(docs), nil
}

func (s *articleServiceImpl) resolveTags(ctx context.Context, names []string) ([]*model.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	tags := make([]*model.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, &model.Tag{Name: name, Slug: util.Slugify(name)})
	}
	return s.tagRepo.GetOrCreateTags(ctx, tags)
}

// indexArticle 写入检索索引，失败只记日志不阻断主流程
func (s *articleServiceImpl) indexArticle(ctx context.Context, article *model.Article, tags []*model.Tag) {
	tagNames := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagNames = append(tagNames, tag.Name)
	}

	doc := &es.ArticleES{
		ID:            article.ID,
		AuthorID:      article.AuthorID,
		Title:         article.Title,
		Slug:          article.Slug,
		Content:       article.Content,
		Tags:          tagNames,
		IsDestination: article.IsDestination,
		RatingsCount:  article.RatingsCount,
		CreatedAt:     article.CreatedAt,
		UpdatedAt:     article.UpdatedAt,
	}
	if article.AvgRating != nil {
		doc.AvgRating = *article.AvgRating
	}
	if article.Author.FirstName != nil {
		doc.AuthorNickname = *article.Author.FirstName
	}

	if err := s.articleES.IndexArticle(ctx, doc, time.Now().UnixMilli()); err != nil {
		log.ErrorContext(ctx, "Article: ES index failed", "article_id", article.ID, "err", err)
	}
}

// countView 阅读计数器自增，失败只记日志不阻断主流程
func (s *articleServiceImpl) countView(ctx context.Context, articleID uint64) {
	if _, err := redis.IncrBy(ctx, consts.ArticleViewKey+strconv.FormatUint(articleID, 10), 1); err != nil {
		log.ErrorContext(ctx, "Article: view count failed", "article_id", articleID, "err", err)
	}
}

// syncDestination 目的地目录同步，失败只记日志不阻断主流程
func (s *articleServiceImpl) syncDestination(ctx context.Context, article *model.Article) {
	if err := s.destinationService.SyncFromArticle(ctx, article); err != nil {
		log.ErrorContext(ctx, "Article: destination sync failed", "article_id", article.ID, "err", err)
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func (s *articleServiceImpl) docsToDTOs(docs []*es.ArticleES) []*dto.ArticleDTO {
	list := make([]*dto.ArticleDTO, 0, len(docs))
	for _, doc := range docs {
		articleDTO := &dto.ArticleDTO{
			ID:            doc.ID,
			Title:         doc.Title,
			Slug:          doc.Slug,
			Content:       doc.Content,
			IsDestination: doc.IsDestination,
			RatingsCount:  doc.RatingsCount,
			CreatedAt:     doc.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     doc.UpdatedAt.Format(time.RFC3339),
			AuthorID:      doc.AuthorID,
		}
		if doc.AvgRating > 0 {
			articleDTO.AvgRating = util.PtrFloat64(doc.AvgRating)
		}
		tags := make([]*dto.TagDTO, 0, len(doc.Tags))
		for _, name := range doc.Tags {
			tags = append(tags, &dto.TagDTO{Name: name, Slug: util.Slugify(name)})
		}
		articleDTO.Tags = tags
		list = append(list, articleDTO)
	}
	return list
}

func toArticleDTO(article *model.Article) *dto.ArticleDTO {
	articleDTO := &dto.ArticleDTO{
		ID:              article.ID,
		Title:           article.Title,
		Slug:            article.Slug,
		Content:         article.Content,
		IsDestination:   article.IsDestination,
		ContinentID:     article.ContinentID,
		AvgRating:       article.AvgRating,
		RatingsCount:    article.RatingsCount,
		CreatedAt:       article.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       article.UpdatedAt.Format(time.RFC3339),
		AuthorID:        article.AuthorID,
		AuthorFirstName: article.Author.FirstName,
		AuthorLastName:  article.Author.LastName,
	}
	tags := make([]*dto.TagDTO, 0, len(article.Tags))
	for _, tag := range article.Tags {
		tags = append(tags, &dto.TagDTO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	articleDTO.Tags = tags
	return articleDTO
}
