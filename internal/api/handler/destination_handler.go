package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/response"
	"Wayfarer/internal/service"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	destinationSvc service.DestinationService
}

func NewDestinationHandler(destinationSvc service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationSvc: destinationSvc}
}

func (s *DestinationHandler) ListDestinations(c *gin.Context) {
	var req dto.ListDestinationDTO
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	list, err := s.destinationSvc.ListDestinations(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *DestinationHandler) GetDestinationBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	destinationDTO, err := s.destinationSvc.GetDestinationBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, destinationDTO)
}

func (s *DestinationHandler) ListContinents(c *gin.Context) {
	list, err := s.destinationSvc.ListContinents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
