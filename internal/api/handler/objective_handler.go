package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/service"

	"github.com/gin-gonic/gin"
)

type ObjectiveHandler struct {
	objectiveSvc service.ObjectiveService
}

func NewObjectiveHandler(objectiveSvc service.ObjectiveService) *ObjectiveHandler {
	return &ObjectiveHandler{objectiveSvc: objectiveSvc}
}

func (s *ObjectiveHandler) GetObjectives(c *gin.Context) {
	objectives, err := s.objectiveSvc.GetObjectives(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, objectives)
}

func (s *ObjectiveHandler) CreateObjective(c *gin.Context) {
	var req dto.ObjectiveBaseDTO
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	objective, err := s.objectiveSvc.CreateObjective(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, objective)
}
