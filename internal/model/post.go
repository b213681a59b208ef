package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ContentTypeImage    = "IMAGE"
	ContentTypeVideo    = "VIDEO"
	ContentTypeReel     = "REEL"
	ContentTypeStory    = "STORY"
	ContentTypeCarousel = "CAROUSEL"
)

type Post struct {
	ID          uint64         `gorm:"primaryKey"`
	CampaignID  uint64         `gorm:"not null;index:idx_campaign_date"`
	PostDate    datatypes.Date `gorm:"not null;index:idx_campaign_date"`
	ContentType string         `gorm:"type:varchar(20);not null"`
	Caption     string         `gorm:"type:text;not null"`
	URL         string         `gorm:"type:varchar(200);not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 关联关系；Metrics 为空表示尚未录入指标
	Campaign Campaign     `gorm:"foreignKey:CampaignID;references:ID"`
	Metrics  *PostMetrics `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}
