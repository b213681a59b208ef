package repository

import (
	"CampaignLens/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostsByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	GetPostsByCampaign(ctx context.Context, campaignID uint64) ([]*model.Post, error)
	GetPostsByCampaignIds(ctx context.Context, campaignIDs []uint64) ([]*model.Post, error)
	GetPostIdsByCampaign(ctx context.Context, campaignID uint64) ([]uint64, error)
	GetPostIdsByChannel(ctx context.Context, channelID uint64) ([]uint64, error)
	CreatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// GetPost 连同指标与所属活动、渠道一起加载
func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Metrics").
		Preload("Campaign.Channel").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostsByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, len(ids))
	if len(ids) == 0 {
		return posts, nil
	}
	result := s.db.WithContext(ctx).
		Preload("Metrics").
		Preload("Campaign.Channel").
		Where("id IN ?", ids).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetPostsByCampaign 按发布日期升序
func (s *PostRepoImpl) GetPostsByCampaign(ctx context.Context, campaignID uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("Metrics").
		Where("campaign_id = ?", campaignID).
		Order("post_date ASC, id ASC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetPostsByCampaignIds 一次性读取多个活动的帖子与指标
func (s *PostRepoImpl) GetPostsByCampaignIds(ctx context.Context, campaignIDs []uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	if len(campaignIDs) == 0 {
		return posts, nil
	}
	result := s.db.WithContext(ctx).
		Preload("Metrics").
		Where("campaign_id IN ?", campaignIDs).
		Order("id ASC").
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) GetPostIdsByCampaign(ctx context.Context, campaignID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("campaign_id = ?", campaignID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PostRepoImpl) GetPostIdsByChannel(ctx context.Context, channelID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Joins("JOIN campaigns ON campaigns.id = posts.campaign_id").
		Where("campaigns.channel_id = ?", channelID).
		Pluck("posts.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Omit("Campaign", "Metrics").Create(post).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostMetrics{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
