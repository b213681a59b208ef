package dto

import "github.com/shopspring/decimal"

// CampaignBaseDTO 创建 / 修改活动
type CampaignBaseDTO struct {
	Name        string          `json:"name" binding:"required" validate:"min=1,max=150"`
	ChannelID   uint64          `json:"channel_id" binding:"required"`
	ObjectiveID uint64          `json:"objective_id" binding:"required"`
	StartDate   string          `json:"start_date" binding:"required" validate:"datetime=2006-01-02"`
	EndDate     *string         `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Budget      decimal.Decimal `json:"budget"`
}

// CampaignDTO 活动返回对象
type CampaignDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Channel   *ChannelDTO     `json:"channel"`
	Objective *ObjectiveDTO   `json:"objective"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date,omitempty"`
	Budget    decimal.Decimal `json:"budget"`
}

// CampaignChartDTO 活动详情图表，逐帖对应
type CampaignChartDTO struct {
	Labels      []string  `json:"labels"`
	Impressions []int64   `json:"impressions"`
	Clicks      []int64   `json:"clicks"`
	Engagement  []float64 `json:"engagement"`
}

// CampaignDetailDTO 活动详情
type CampaignDetailDTO struct {
	CampaignDTO
	Posts []*PostDTO        `json:"posts"`
	Chart *CampaignChartDTO `json:"chart"`
}
