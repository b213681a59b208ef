package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/service"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignSvc service.CampaignService
}

func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

func (s *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := s.campaignSvc.GetCampaigns(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

// GetCampaign 活动详情及逐帖图表
func (s *CampaignHandler) GetCampaign(c *gin.Context) {
	campaignID, err := pathID(c, "campaign_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	detail, err := s.campaignSvc.GetCampaignDetail(c.Request.Context(), currentUserID(c), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req dto.CampaignBaseDTO
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	campaign, err := s.campaignSvc.CreateCampaign(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) UpdateCampaign(c *gin.Context) {
	campaignID, err := pathID(c, "campaign_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CampaignBaseDTO
	if err = bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.campaignSvc.UpdateCampaign(c.Request.Context(), currentUserID(c), campaignID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CampaignHandler) DeleteCampaign(c *gin.Context) {
	campaignID, err := pathID(c, "campaign_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.campaignSvc.DeleteCampaign(c.Request.Context(), currentUserID(c), campaignID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
