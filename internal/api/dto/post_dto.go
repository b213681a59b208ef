package dto

// PostBaseDTO 创建帖子
type PostBaseDTO struct {
	CampaignID  uint64 `json:"campaign_id" binding:"required"`
	PostDate    string `json:"post_date" binding:"required" validate:"datetime=2006-01-02"`
	ContentType string `json:"content_type" binding:"required" validate:"oneof=IMAGE VIDEO REEL STORY CAROUSEL"`
	Caption     string `json:"caption" binding:"required" validate:"min=1"`
	URL         string `json:"url" validate:"omitempty,url,max=200"`
}

// PostMetricsDTO 帖子指标，均为非负整数
type PostMetricsDTO struct {
	Impressions int64 `json:"impressions" validate:"min=0"`
	Likes       int64 `json:"likes" validate:"min=0"`
	Comments    int64 `json:"comments" validate:"min=0"`
	Shares      int64 `json:"shares" validate:"min=0"`
	Saves       int64 `json:"saves" validate:"min=0"`
	Clicks      int64 `json:"clicks" validate:"min=0"`
}

// PostDTO 帖子返回对象，Metrics 为空表示尚未录入
type PostDTO struct {
	ID           uint64          `json:"id"`
	CampaignID   uint64          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name,omitempty"`
	PostDate     string          `json:"post_date"`
	ContentType  string          `json:"content_type"`
	Caption      string          `json:"caption"`
	URL          string          `json:"url"`
	Metrics      *PostMetricsDTO `json:"metrics"`
}

// PostSearchDTO 帖子检索
type PostSearchDTO struct {
	Keyword     string `form:"keyword" binding:"required"`
	ContentType string `form:"content_type"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	PageSize    int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

// PostSearchResultDTO 检索结果分页
type PostSearchResultDTO struct {
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Posts    []*PostDTO `json:"posts"`
}
