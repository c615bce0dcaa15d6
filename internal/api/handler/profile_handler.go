package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (s *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profileDTO, err := s.profileSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profileDTO)
}

// UpdateInterests 覆盖兴趣标签，变更会同步重建推荐榜单
func (s *ProfileHandler) UpdateInterests(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.UpdateInterestsDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.profileSvc.UpdateInterests(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
