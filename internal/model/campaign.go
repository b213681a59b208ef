package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Campaign struct {
	ID          uint64          `gorm:"primaryKey"`
	ChannelID   uint64          `gorm:"not null;index:idx_channel_start"`
	ObjectiveID uint64          `gorm:"not null;index:idx_objective_id"`
	Name        string          `gorm:"type:varchar(150);not null"`
	StartDate   datatypes.Date  `gorm:"not null;index:idx_channel_start"`
	EndDate     *datatypes.Date `gorm:"default:null"`
	Budget      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 关联关系
	Channel   Channel   `gorm:"foreignKey:ChannelID;references:ID"`
	Objective Objective `gorm:"foreignKey:ObjectiveID;references:ID;constraint:OnDelete:RESTRICT"`
	Posts     []Post    `gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// StartTime 返回开始日期的 time.Time 形式
func (c *Campaign) StartTime() time.Time {
	return time.Time(c.StartDate)
}
