package model

import (
	"time"
)

// Channel 用户名下被追踪的社交媒体账号
type Channel struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	OwnerID        uint64    `gorm:"not null;index:idx_owner_id" json:"owner_id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	PlatformHandle string    `gorm:"type:varchar(100);not null;default:''" json:"platform_handle"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 关联关系
	Owner     User       `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Campaigns []Campaign `gorm:"foreignKey:ChannelID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Channel) TableName() string {
	return "channels"
}
