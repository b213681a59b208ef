package main

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/pkg/database"
	"CampaignLens/internal/pkg/es"
	"CampaignLens/internal/pkg/minio"
	"CampaignLens/internal/pkg/mongo"
	"CampaignLens/internal/pkg/redis"
	"context"
	"fmt"
	log "log/slog"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// infra 进程内共享的外部连接
type infra struct {
	db      *gorm.DB
	mongoDB *mongodriver.Database
}

// initInfra 依次建立 MySQL、Redis、MinIO、MongoDB、Elasticsearch 连接，任一失败即返回
func initInfra(cfg *config.Config) (*infra, error) {
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if err = redis.InitRedis(cfg.Redis); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	if err = minio.Init(); err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}

	// 导出记录的过期时间跟随对象存储的保留天数
	mongoDB, err := mongo.InitMongo(cfg.Mongo, cfg.MinIO.RetentionDays)
	if err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}

	if err = es.InitClient(); err != nil {
		return nil, fmt.Errorf("elasticsearch: %w", err)
	}

	return &infra{db: db, mongoDB: mongoDB}, nil
}

func (i *infra) close(ctx context.Context) {
	if sqlDB, err := i.db.DB(); err == nil {
		if err = sqlDB.Close(); err != nil {
			log.Warn("close database failed", "err", err)
		}
	}
	if redis.Rdb != nil {
		if err := redis.Rdb.Close(); err != nil {
			log.Warn("close redis failed", "err", err)
		}
	}
	if err := i.mongoDB.Client().Disconnect(ctx); err != nil {
		log.Warn("disconnect mongo failed", "err", err)
	}
}
