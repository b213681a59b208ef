package dto

import "time"

// ReportQueryDTO 报表筛选参数，全部按原始字符串接收
type ReportQueryDTO struct {
	Channel   string `form:"channel"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// CampaignPerformanceDTO 报表中单个活动的汇总
type CampaignPerformanceDTO struct {
	CampaignID       uint64  `json:"campaign_id"`
	CampaignName     string  `json:"campaign_name"`
	ChannelID        uint64  `json:"channel_id"`
	ChannelName      string  `json:"channel_name"`
	StartDate        string  `json:"start_date"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalLikes       int64   `json:"total_likes"`
	TotalComments    int64   `json:"total_comments"`
	TotalShares      int64   `json:"total_shares"`
	TotalClicks      int64   `json:"total_clicks"`
	EngagementRate   float64 `json:"engagement_rate"`
	CTR              float64 `json:"ctr"`
}

// CampaignReportDTO 活动表现报表
type CampaignReportDTO struct {
	Results           []*CampaignPerformanceDTO `json:"results"`
	Channels          []*ChannelDTO             `json:"channels"`
	SelectedChannelID string                    `json:"selected_channel_id"`
	StartDate         string                    `json:"start_date"`
	EndDate           string                    `json:"end_date"`
}

// ReportExportDTO 导出结果
type ReportExportDTO struct {
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Rows      int       `json:"rows"`
}

// ReportExportRecordDTO 历史导出记录，URL 为重新签发的下载链接
type ReportExportRecordDTO struct {
	ID        string    `json:"id"`
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	Channel   string    `json:"channel"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportExportListDTO struct {
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
	Exports  []*ReportExportRecordDTO `json:"exports"`
}

// ReportExportListQueryDTO 导出记录分页
type ReportExportListQueryDTO struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=20" binding:"min=1,max=100"`
}
