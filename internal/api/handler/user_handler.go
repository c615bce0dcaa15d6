package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.Register(c.Request.Context(), &registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	userDTO, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) UpdateUserInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var userDTO dto.UserDTO
	if err := c.ShouldBind(&userDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.UpdateUserInfo(c.Request.Context(), userID, &userDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) BanUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userSvc.BanUser(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UnbanUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.userSvc.UnBanUser(c.Request.Context(), targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ChangeRoles 管理员整组覆盖用户角色
func (s *UserHandler) ChangeRoles(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var rolesDTO dto.ChangeRolesDTO
	if err = c.ShouldBind(&rolesDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.ChangeRoles(c.Request.Context(), targetID, &rolesDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
