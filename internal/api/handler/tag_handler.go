package handler

import (
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

func (s *TagHandler) ListTags(c *gin.Context) {
	list, err := s.tagSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
