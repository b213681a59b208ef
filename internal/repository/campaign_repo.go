package repository

import (
	"CampaignLens/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CampaignQuery 报表候选活动的查询条件，均按用户拥有的渠道限定
type CampaignQuery struct {
	OwnerID   uint64
	ChannelID *uint64
	StartFrom *time.Time
	StartTo   *time.Time
}

type CampaignRepo interface {
	FindCampaigns(ctx context.Context, q CampaignQuery) ([]*model.Campaign, error)
	GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	UpdateCampaign(ctx context.Context, campaign *model.Campaign) error
	DeleteCampaign(ctx context.Context, id uint64) error
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) CampaignRepo {
	return &campaignRepoImpl{db: db}
}

// FindCampaigns 按 owner / channel / 开始日期区间筛选，按 ID 升序返回
func (r *campaignRepoImpl) FindCampaigns(ctx context.Context, q CampaignQuery) ([]*model.Campaign, error) {
	campaigns := make([]*model.Campaign, 0)

	tx := r.db.WithContext(ctx).
		Select("campaigns.*").
		Joins("JOIN channels ON channels.id = campaigns.channel_id").
		Where("channels.owner_id = ?", q.OwnerID)

	if q.ChannelID != nil {
		tx = tx.Where("campaigns.channel_id = ?", *q.ChannelID)
	}
	if q.StartFrom != nil {
		tx = tx.Where("campaigns.start_date >= ?", q.StartFrom.Format(time.DateOnly))
	}
	if q.StartTo != nil {
		// 上界包含当天，按次日取半开区间
		tx = tx.Where("campaigns.start_date < ?", q.StartTo.AddDate(0, 0, 1).Format(time.DateOnly))
	}

	result := tx.
		Preload("Channel").
		Preload("Objective").
		Order("campaigns.id ASC").
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

func (r *campaignRepoImpl) GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).
		Preload("Channel").
		Preload("Objective").
		First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepoImpl) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Omit("Channel", "Objective", "Posts").Create(campaign).Error
}

func (r *campaignRepoImpl) UpdateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]interface{}{
			"channel_id":   campaign.ChannelID,
			"objective_id": campaign.ObjectiveID,
			"name":         campaign.Name,
			"start_date":   campaign.StartDate,
			"end_date":     campaign.EndDate,
			"budget":       campaign.Budget,
		}).Error
}

// DeleteCampaign 级联删除帖子与指标
func (r *campaignRepoImpl) DeleteCampaign(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		postIDs := tx.Model(&model.Post{}).Select("id").Where("campaign_id = ?", id)
		if err := tx.Where("post_id IN (?)", postIDs).Delete(&model.PostMetrics{}).Error; err != nil {
			return err
		}
		if err := tx.Where("campaign_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Campaign{}, id).Error
	})
}
