package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/repository"
	"context"
)

type ChannelService interface {
	GetChannels(ctx context.Context, userID uint64) ([]*dto.ChannelDTO, error)
	GetChannel(ctx context.Context, userID uint64, channelID uint64) (*dto.ChannelDTO, error)
	CreateChannel(ctx context.Context, userID uint64, dto *dto.ChannelBaseDTO) (*dto.ChannelDTO, error)
	UpdateChannel(ctx context.Context, userID uint64, channelID uint64, dto *dto.ChannelBaseDTO) error
	DeleteChannel(ctx context.Context, userID uint64, channelID uint64) error
}

type channelServiceImpl struct {
	channelRepo repository.ChannelRepo
	postRepo    repository.PostRepo
	cache       Cache
}

func NewChannelService(channelRepo repository.ChannelRepo, postRepo repository.PostRepo, cache Cache) ChannelService {
	return &channelServiceImpl{
		channelRepo: channelRepo,
		postRepo:    postRepo,
		cache:       cache,
	}
}

func (s *channelServiceImpl) GetChannels(ctx context.Context, userID uint64) ([]*dto.ChannelDTO, error) {
	channels, err := s.channelRepo.GetChannelsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toChannelDTOs(channels), nil
}

func (s *channelServiceImpl) GetChannel(ctx context.Context, userID uint64, channelID uint64) (*dto.ChannelDTO, error) {
	channel, err := s.getOwnedChannel(ctx, userID, channelID)
	if err != nil {
		return nil, err
	}
	return toChannelDTO(channel), nil
}

func (s *channelServiceImpl) CreateChannel(ctx context.Context, userID uint64, in *dto.ChannelBaseDTO) (*dto.ChannelDTO, error) {
	channel := &model.Channel{
		OwnerID:        userID,
		Name:           in.Name,
		PlatformHandle: in.PlatformHandle,
		Description:    in.Description,
	}
	if err := s.channelRepo.CreateChannel(ctx, channel); err != nil {
		return nil, err
	}
	bumpReportVersion(ctx, s.cache, userID)
	return toChannelDTO(channel), nil
}

func (s *channelServiceImpl) UpdateChannel(ctx context.Context, userID uint64, channelID uint64, in *dto.ChannelBaseDTO) error {
	channel, err := s.getOwnedChannel(ctx, userID, channelID)
	if err != nil {
		return err
	}
	channel.Name = in.Name
	channel.PlatformHandle = in.PlatformHandle
	channel.Description = in.Description
	if err = s.channelRepo.UpdateChannel(ctx, channel); err != nil {
		return err
	}
	bumpReportVersion(ctx, s.cache, userID)
	return nil
}

// DeleteChannel 级联删除渠道下的活动、帖子与指标，并将帖子移出搜索索引
func (s *channelServiceImpl) DeleteChannel(ctx context.Context, userID uint64, channelID uint64) error {
	if _, err := s.getOwnedChannel(ctx, userID, channelID); err != nil {
		return err
	}
	postIDs, err := s.postRepo.GetPostIdsByChannel(ctx, channelID)
	if err != nil {
		return err
	}
	if err = s.channelRepo.DeleteChannel(ctx, channelID); err != nil {
		return err
	}
	markPostsDirty(ctx, s.cache, postIDs...)
	bumpReportVersion(ctx, s.cache, userID)
	return nil
}

func (s *channelServiceImpl) getOwnedChannel(ctx context.Context, userID uint64, channelID uint64) (*model.Channel, error) {
	channel, err := s.channelRepo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil || channel.OwnerID != userID {
		return nil, ErrChannelNotFound
	}
	return channel, nil
}
