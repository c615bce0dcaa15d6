package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) GetNotificationList(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.notificationSvc.GetNotifications(c.Request.Context(), userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.notificationSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.UnreadCountDTO{Count: count})
}

func (s *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	msgID := c.Query("id")
	if msgID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.notificationSvc.MarkAsRead(c.Request.Context(), userID, msgID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
