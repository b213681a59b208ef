package wire

import (
	"CampaignLens/internal/api"
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/api/handler"
	"CampaignLens/internal/api/middleware"
	"CampaignLens/internal/job"
	"CampaignLens/internal/pkg/cron"
	"CampaignLens/internal/pkg/es"
	"CampaignLens/internal/pkg/kafka"
	"CampaignLens/internal/pkg/minio"
	"CampaignLens/internal/pkg/mongo"
	"CampaignLens/internal/pkg/redis"
	"CampaignLens/internal/pkg/security"
	"CampaignLens/internal/repository"
	"CampaignLens/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	cache := redis.NewStore(redis.Rdb)
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.ExpireHours)*time.Hour)

	userRepo := repository.NewUserRepo(db)
	channelRepo := repository.NewChannelRepo(db)
	objectiveRepo := repository.NewObjectiveRepo(db)
	campaignRepo := repository.NewCampaignRepo(db)
	postRepo := repository.NewPostRepo(db)
	postMetricsRepo := repository.NewPostMetricsRepository(db)
	postESRepo := es.NewPostRepo(es.Client)
	exportRepo := mongo.NewExportRecordRepo(mongoDB)

	userService := service.NewUserService(userRepo, tokens, cache)
	channelService := service.NewChannelService(channelRepo, postRepo, cache)
	objectiveService := service.NewObjectiveService(objectiveRepo)
	campaignService := service.NewCampaignService(campaignRepo, channelRepo, objectiveRepo, postRepo, cache)
	postService := service.NewPostService(postESRepo, postRepo, postMetricsRepo, campaignRepo, cache)
	reportService := service.NewReportService(
		channelRepo,
		campaignRepo,
		postRepo,
		cache,
		minio.NewReportStore(),
		exportRepo,
		time.Duration(cfg.Report.CacheTTLSeconds)*time.Second,
		time.Duration(cfg.MinIO.PresignMinute)*time.Minute,
	)

	handlers := &api.HandlersGroup{
		UserHandler:      handler.NewUserHandler(userService),
		ChannelHandler:   handler.NewChannelHandler(channelService),
		ObjectiveHandler: handler.NewObjectiveHandler(objectiveService),
		CampaignHandler:  handler.NewCampaignHandler(campaignService),
		PostHandler:      handler.NewPostHandler(postService),
		ReportHandler:    handler.NewReportHandler(reportService),
	}

	router := api.SetupRouter(handlers, middleware.AuthMiddleware(tokens, cache), cfg.Server.AllowedOrigins)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postService)
	if err != nil {
		return nil, err
	}

	postIndexJob := job.NewPostIndexJob(cache, postRepo, postESRepo)
	cronMgr := cron.NewCronManager(cron.Task{Name: "post-index", Spec: cfg.Cron.PostIndexSpec, Job: postIndexJob})

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
