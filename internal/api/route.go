package api

import (
	"CampaignLens/internal/api/middleware"
	"CampaignLens/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter auth 为鉴权中间件，除注册登录外的接口均需登录
func SetupRouter(group *HandlersGroup, auth gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		channelGroup := apiGroup.Group("/channels")
		channelGroup.Use(auth)
		{
			channelGroup.GET("", group.ChannelHandler.GetChannels)
			channelGroup.POST("", group.ChannelHandler.CreateChannel)
			channelGroup.GET("/:channel_id", group.ChannelHandler.GetChannel)
			channelGroup.PUT("/:channel_id", group.ChannelHandler.UpdateChannel)
			channelGroup.DELETE("/:channel_id", group.ChannelHandler.DeleteChannel)
		}

		objectiveGroup := apiGroup.Group("/objectives")
		objectiveGroup.Use(auth)
		{
			objectiveGroup.GET("", group.ObjectiveHandler.GetObjectives)
			objectiveGroup.POST("", group.ObjectiveHandler.CreateObjective)
		}

		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.Use(auth)
		{
			campaignGroup.GET("", group.CampaignHandler.GetCampaigns)
			campaignGroup.POST("", group.CampaignHandler.CreateCampaign)
			campaignGroup.GET("/:campaign_id", group.CampaignHandler.GetCampaign)
			campaignGroup.PUT("/:campaign_id", group.CampaignHandler.UpdateCampaign)
			campaignGroup.DELETE("/:campaign_id", group.CampaignHandler.DeleteCampaign)
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(auth)
		{
			postGroup.GET("/search", group.PostHandler.SearchPost)
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			postGroup.PUT("/:post_id/metrics", group.PostHandler.UpdateMetrics)
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(auth)
		{
			reportGroup.GET("/campaigns", group.ReportHandler.CampaignPerformance)
			reportGroup.POST("/campaigns/export", group.ReportHandler.ExportCampaignPerformance)
			reportGroup.GET("/exports", group.ReportHandler.ListExports)
		}
	}

	return r
}
