package api

import "CampaignLens/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	ChannelHandler   *handler.ChannelHandler
	ObjectiveHandler *handler.ObjectiveHandler
	CampaignHandler  *handler.CampaignHandler
	PostHandler      *handler.PostHandler
	ReportHandler    *handler.ReportHandler
}
