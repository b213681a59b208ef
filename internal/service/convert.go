package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/util"

	"github.com/jinzhu/copier"
)

func toChannelDTO(channel *model.Channel) *dto.ChannelDTO {
	out := &dto.ChannelDTO{}
	_ = copier.Copy(out, channel)
	return out
}

func toChannelDTOs(channels []*model.Channel) []*dto.ChannelDTO {
	res := make([]*dto.ChannelDTO, 0, len(channels))
	for _, ch := range channels {
		res = append(res, toChannelDTO(ch))
	}
	return res
}

func toObjectiveDTO(objective *model.Objective) *dto.ObjectiveDTO {
	out := &dto.ObjectiveDTO{}
	_ = copier.Copy(out, objective)
	return out
}

func toCampaignDTO(campaign *model.Campaign) *dto.CampaignDTO {
	out := &dto.CampaignDTO{
		ID:        campaign.ID,
		Name:      campaign.Name,
		StartDate: util.FormatDate(campaign.StartDate),
		Budget:    campaign.Budget,
	}
	if campaign.EndDate != nil {
		end := util.FormatDate(*campaign.EndDate)
		out.EndDate = &end
	}
	if campaign.Channel.ID != 0 {
		out.Channel = toChannelDTO(&campaign.Channel)
	}
	if campaign.Objective.ID != 0 {
		out.Objective = toObjectiveDTO(&campaign.Objective)
	}
	return out
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	out := &dto.PostDTO{
		ID:           post.ID,
		CampaignID:   post.CampaignID,
		CampaignName: post.Campaign.Name,
		PostDate:     util.FormatDate(post.PostDate),
		ContentType:  post.ContentType,
		Caption:      post.Caption,
		URL:          post.URL,
	}
	if post.Metrics != nil {
		out.Metrics = &dto.PostMetricsDTO{}
		_ = copier.Copy(out.Metrics, post.Metrics)
	}
	return out
}
