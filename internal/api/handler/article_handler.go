package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
}

func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleSvc: articleSvc}
}

func (s *ArticleHandler) CreateArticle(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.ArticleBaseDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	id, err := s.articleSvc.CreateArticle(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]uint64{"id": id})
}

func (s *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	articleDTO, err := s.articleSvc.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articleDTO)
}

func (s *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	articleDTO, err := s.articleSvc.GetArticleBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articleDTO)
}

func (s *ArticleHandler) GetArticlesByAuthor(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || authorID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err = c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.articleSvc.GetArticlesByAuthor(c.Request.Context(), authorID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.ArticleBaseDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	req.ID = articleID
	if err = s.articleSvc.UpdateArticle(c.Request.Context(), userID, isAdmin(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.articleSvc.DeleteArticle(c.Request.Context(), userID, isAdmin(c), articleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SearchArticles 关键词检索文章
func (s *ArticleHandler) SearchArticles(c *gin.Context) {
	var req dto.SearchArticleDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.articleSvc.SearchArticles(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetArticlesByTag 按标签浏览文章
func (s *ArticleHandler) GetArticlesByTag(c *gin.Context) {
	tag := c.Param("tag")
	if tag == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.articleSvc.GetArticlesByTag(c.Request.Context(), tag, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetLatestArticles 最新文章流
func (s *ArticleHandler) GetLatestArticles(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.articleSvc.GetLatestArticles(c.Request.Context(), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
