package model

import (
	"time"
)

// PostMetrics 与 Post 一对一，缺失时按全零处理
type PostMetrics struct {
	ID          uint64 `gorm:"primaryKey"`
	PostID      uint64 `gorm:"not null;uniqueIndex:idx_post_id"`
	Impressions int64  `gorm:"not null;default:0"`
	Likes       int64  `gorm:"not null;default:0"`
	Comments    int64  `gorm:"not null;default:0"`
	Shares      int64  `gorm:"not null;default:0"`
	Saves       int64  `gorm:"not null;default:0"`
	Clicks      int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (PostMetrics) TableName() string {
	return "post_metrics"
}
