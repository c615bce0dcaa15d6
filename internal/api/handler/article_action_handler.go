package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArticleActionHandler struct {
	actionSvc service.ArticleActionService
}

func NewArticleActionHandler(actionSvc service.ArticleActionService) *ArticleActionHandler {
	return &ArticleActionHandler{actionSvc: actionSvc}
}

// RateArticle 评分 1-5，重复评分覆盖旧值
func (s *ArticleActionHandler) RateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.RateArticleDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.actionSvc.RateArticle(c.Request.Context(), userID, articleID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleActionHandler) GetMyRating(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	ratingDTO, err := s.actionSvc.GetMyRating(c.Request.Context(), userID, articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ratingDTO)
}

func (s *ArticleActionHandler) CreateComment(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.CreateCommentDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.actionSvc.CreateComment(c.Request.Context(), userID, articleID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleActionHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err = s.actionSvc.DeleteComment(c.Request.Context(), userID, isAdmin(c), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ArticleActionHandler) GetComments(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err = c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.actionSvc.GetComments(c.Request.Context(), articleID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
