package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/service"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelSvc service.ChannelService
}

func NewChannelHandler(channelSvc service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelSvc: channelSvc}
}

func (s *ChannelHandler) GetChannels(c *gin.Context) {
	channels, err := s.channelSvc.GetChannels(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channels)
}

func (s *ChannelHandler) GetChannel(c *gin.Context) {
	channelID, err := pathID(c, "channel_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	channel, err := s.channelSvc.GetChannel(c.Request.Context(), currentUserID(c), channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channel)
}

func (s *ChannelHandler) CreateChannel(c *gin.Context) {
	var req dto.ChannelBaseDTO
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	channel, err := s.channelSvc.CreateChannel(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, channel)
}

func (s *ChannelHandler) UpdateChannel(c *gin.Context) {
	channelID, err := pathID(c, "channel_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ChannelBaseDTO
	if err = bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.channelSvc.UpdateChannel(c.Request.Context(), currentUserID(c), channelID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ChannelHandler) DeleteChannel(c *gin.Context) {
	channelID, err := pathID(c, "channel_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.channelSvc.DeleteChannel(c.Request.Context(), currentUserID(c), channelID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
