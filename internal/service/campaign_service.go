package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/analytics"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/repository"
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// 预算为 decimal(10,2)
var maxBudget = decimal.New(1, 8)

type CampaignService interface {
	GetCampaigns(ctx context.Context, userID uint64) ([]*dto.CampaignDTO, error)
	GetCampaignDetail(ctx context.Context, userID uint64, campaignID uint64) (*dto.CampaignDetailDTO, error)
	CreateCampaign(ctx context.Context, userID uint64, dto *dto.CampaignBaseDTO) (*dto.CampaignDTO, error)
	UpdateCampaign(ctx context.Context, userID uint64, campaignID uint64, dto *dto.CampaignBaseDTO) error
	DeleteCampaign(ctx context.Context, userID uint64, campaignID uint64) error
}

type campaignServiceImpl struct {
	campaignRepo  repository.CampaignRepo
	channelRepo   repository.ChannelRepo
	objectiveRepo repository.ObjectiveRepo
	postRepo      repository.PostRepo
	cache         Cache
}

func NewCampaignService(
	campaignRepo repository.CampaignRepo,
	channelRepo repository.ChannelRepo,
	objectiveRepo repository.ObjectiveRepo,
	postRepo repository.PostRepo,
	cache Cache,
) CampaignService {
	return &campaignServiceImpl{
		campaignRepo:  campaignRepo,
		channelRepo:   channelRepo,
		objectiveRepo: objectiveRepo,
		postRepo:      postRepo,
		cache:         cache,
	}
}

func (s *campaignServiceImpl) GetCampaigns(ctx context.Context, userID uint64) ([]*dto.CampaignDTO, error) {
	campaigns, err := s.campaignRepo.FindCampaigns(ctx, repository.CampaignQuery{OwnerID: userID})
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		res = append(res, toCampaignDTO(c))
	}
	return res, nil
}

// GetCampaignDetail 活动详情，附带按发布日期排列的逐帖图表数据
func (s *campaignServiceImpl) GetCampaignDetail(ctx context.Context, userID uint64, campaignID uint64) (*dto.CampaignDetailDTO, error) {
	campaign, err := s.getOwnedCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.GetPostsByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}

	series := analytics.BuildPostSeries(posts)
	detail := &dto.CampaignDetailDTO{
		CampaignDTO: *toCampaignDTO(campaign),
		Posts:       make([]*dto.PostDTO, 0, len(posts)),
		Chart: &dto.CampaignChartDTO{
			Labels:      series.Labels,
			Impressions: series.Impressions,
			Clicks:      series.Clicks,
			Engagement:  series.Engagement,
		},
	}
	for _, p := range posts {
		p.Campaign = *campaign
		detail.Posts = append(detail.Posts, toPostDTO(p))
	}
	return detail, nil
}

func (s *campaignServiceImpl) CreateCampaign(ctx context.Context, userID uint64, in *dto.CampaignBaseDTO) (*dto.CampaignDTO, error) {
	campaign := &model.Campaign{}
	if err := s.fill(ctx, userID, campaign, in); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	bumpReportVersion(ctx, s.cache, userID)
	return toCampaignDTO(campaign), nil
}

func (s *campaignServiceImpl) UpdateCampaign(ctx context.Context, userID uint64, campaignID uint64, in *dto.CampaignBaseDTO) error {
	campaign, err := s.getOwnedCampaign(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if err = s.fill(ctx, userID, campaign, in); err != nil {
		return err
	}
	if err = s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return err
	}

	// 活动名称与渠道写入了帖子索引
	postIDs, err := s.postRepo.GetPostIdsByCampaign(ctx, campaign.ID)
	if err != nil {
		return err
	}
	markPostsDirty(ctx, s.cache, postIDs...)
	bumpReportVersion(ctx, s.cache, userID)
	return nil
}

func (s *campaignServiceImpl) DeleteCampaign(ctx context.Context, userID uint64, campaignID uint64) error {
	campaign, err := s.getOwnedCampaign(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	postIDs, err := s.postRepo.GetPostIdsByCampaign(ctx, campaign.ID)
	if err != nil {
		return err
	}
	if err = s.campaignRepo.DeleteCampaign(ctx, campaign.ID); err != nil {
		return err
	}
	markPostsDirty(ctx, s.cache, postIDs...)
	bumpReportVersion(ctx, s.cache, userID)
	return nil
}

// fill 校验输入并写入 campaign，渠道必须属于当前用户
func (s *campaignServiceImpl) fill(ctx context.Context, userID uint64, campaign *model.Campaign, in *dto.CampaignBaseDTO) error {
	start, err := util.ParseDate(in.StartDate)
	if err != nil {
		return ErrParamInvalid
	}
	var end *datatypes.Date
	if in.EndDate != nil && *in.EndDate != "" {
		d, err := util.ParseDate(*in.EndDate)
		if err != nil {
			return ErrParamInvalid
		}
		if time.Time(d).Before(time.Time(start)) {
			return ErrCampaignDateInvalid
		}
		end = &d
	}
	if err = ValidateBudget(in.Budget); err != nil {
		return err
	}

	channel, err := s.channelRepo.GetChannel(ctx, in.ChannelID)
	if err != nil {
		return err
	}
	if channel == nil || channel.OwnerID != userID {
		return ErrChannelNotFound
	}
	objective, err := s.objectiveRepo.GetObjective(ctx, in.ObjectiveID)
	if err != nil {
		return err
	}
	if objective == nil {
		return ErrObjectiveNotFound
	}

	campaign.Name = in.Name
	campaign.ChannelID = channel.ID
	campaign.ObjectiveID = objective.ID
	campaign.StartDate = start
	campaign.EndDate = end
	campaign.Budget = in.Budget
	campaign.Channel = *channel
	campaign.Objective = *objective
	return nil
}

// ValidateBudget 预算非负，最多两位小数且不超过 decimal(10,2) 的范围
func ValidateBudget(budget decimal.Decimal) error {
	if budget.IsNegative() || !budget.Equal(budget.Round(2)) || budget.GreaterThanOrEqual(maxBudget) {
		return ErrCampaignBudget
	}
	return nil
}

func (s *campaignServiceImpl) getOwnedCampaign(ctx context.Context, userID uint64, campaignID uint64) (*model.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil || campaign.Channel.OwnerID != userID {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}
