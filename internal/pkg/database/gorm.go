package database

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 打开 MySQL 连接并按配置设置连接池，auto_migrate 打开时同步表结构
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	dialector := mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 255,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(cfg.LogLevel, time.Duration(cfg.SlowThresholdMs)*time.Millisecond),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	if cfg.AutoMigrate {
		if err = Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("Database connection established", "max_open", cfg.MaxOpen, "auto_migrate", cfg.AutoMigrate)
	return db, nil
}

// Migrate 按外键依赖顺序建表：用户、渠道、目标、活动、帖子、指标
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Channel{},
		&model.Objective{},
		&model.Campaign{},
		&model.Post{},
		&model.PostMetrics{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
