package handler

import (
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommendSvc service.RecommendService
}

func NewRecommendHandler(recommendSvc service.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommendSvc: recommendSvc}
}

// GetRecommendations 读取推荐榜单，缓存失效或条数不足会在本次请求内重建
func (s *RecommendHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetUint64("user_id")
	list, err := s.recommendSvc.GetRecommendations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Regenerate 显式触发重建
func (s *RecommendHandler) Regenerate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.recommendSvc.PurgeCache(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.recommendSvc.Regenerate(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
