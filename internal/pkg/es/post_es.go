package es

import (
	"CampaignLens/internal/model"
	"time"
)

// PostES 写入 ES 的帖子文档，冗余活动与渠道信息便于按用户过滤
type PostES struct {
	ID           uint64         `json:"id"`
	OwnerID      uint64         `json:"owner_id"`
	ChannelID    uint64         `json:"channel_id"`
	ChannelName  string         `json:"channel_name"`
	CampaignID   uint64         `json:"campaign_id"`
	CampaignName string         `json:"campaign_name"`
	ContentType  string         `json:"content_type"`
	Caption      string         `json:"caption"`
	URL          string         `json:"url"`
	PostDate     string         `json:"post_date"`
	Metrics      *PostMetricsES `json:"metrics,omitempty"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// PostMetricsES 对应 Mapping 中的 metrics 对象
type PostMetricsES struct {
	Impressions int64 `json:"impressions"`
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Saves       int64 `json:"saves"`
	Clicks      int64 `json:"clicks"`
}

// PostSearchQuery 检索条件，OwnerID 必填
type PostSearchQuery struct {
	OwnerID     uint64
	Keyword     string
	ContentType string
	From        int
	Size        int
}

// BuildPostES 由数据库帖子构造索引文档，post 需预加载 Campaign.Channel 与 Metrics
func BuildPostES(post *model.Post) *PostES {
	doc := &PostES{
		ID:           post.ID,
		OwnerID:      post.Campaign.Channel.OwnerID,
		ChannelID:    post.Campaign.ChannelID,
		ChannelName:  post.Campaign.Channel.Name,
		CampaignID:   post.CampaignID,
		CampaignName: post.Campaign.Name,
		ContentType:  post.ContentType,
		Caption:      post.Caption,
		URL:          post.URL,
		PostDate:     time.Time(post.PostDate).Format(time.DateOnly),
		UpdatedAt:    post.UpdatedAt,
	}
	if m := post.Metrics; m != nil {
		doc.Metrics = &PostMetricsES{
			Impressions: m.Impressions,
			Likes:       m.Likes,
			Comments:    m.Comments,
			Shares:      m.Shares,
			Saves:       m.Saves,
			Clicks:      m.Clicks,
		}
		if m.UpdatedAt.After(doc.UpdatedAt) {
			doc.UpdatedAt = m.UpdatedAt
		}
	}
	return doc
}
