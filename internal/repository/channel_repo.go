package repository

import (
	"CampaignLens/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ChannelRepo interface {
	GetChannelsByOwner(ctx context.Context, ownerID uint64) ([]*model.Channel, error)
	GetChannel(ctx context.Context, id uint64) (*model.Channel, error)
	CreateChannel(ctx context.Context, channel *model.Channel) error
	UpdateChannel(ctx context.Context, channel *model.Channel) error
	DeleteChannel(ctx context.Context, id uint64) error
}

type channelRepoImpl struct {
	db *gorm.DB
}

func NewChannelRepo(db *gorm.DB) ChannelRepo {
	return &channelRepoImpl{db: db}
}

func (r *channelRepoImpl) GetChannelsByOwner(ctx context.Context, ownerID uint64) ([]*model.Channel, error) {
	channels := make([]*model.Channel, 0)
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}
	return channels, nil
}

func (r *channelRepoImpl) GetChannel(ctx context.Context, id uint64) (*model.Channel, error) {
	var channel model.Channel
	err := r.db.WithContext(ctx).First(&channel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &channel, nil
}

func (r *channelRepoImpl) CreateChannel(ctx context.Context, channel *model.Channel) error {
	return r.db.WithContext(ctx).Create(channel).Error
}

func (r *channelRepoImpl) UpdateChannel(ctx context.Context, channel *model.Channel) error {
	return r.db.WithContext(ctx).
		Model(&model.Channel{}).
		Where("id = ?", channel.ID).
		Updates(map[string]interface{}{
			"name":            channel.Name,
			"platform_handle": channel.PlatformHandle,
			"description":     channel.Description,
		}).Error
}

// DeleteChannel 级联删除渠道下的活动、帖子与指标
func (r *channelRepoImpl) DeleteChannel(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		campaignIDs := tx.Model(&model.Campaign{}).Select("id").Where("channel_id = ?", id)
		postIDs := tx.Model(&model.Post{}).Select("id").Where("campaign_id IN (?)", campaignIDs)

		if err := tx.Where("post_id IN (?)", postIDs).Delete(&model.PostMetrics{}).Error; err != nil {
			return err
		}
		if err := tx.Where("campaign_id IN (?)", campaignIDs).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("channel_id = ?", id).Delete(&model.Campaign{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Channel{}, id).Error
	})
}
