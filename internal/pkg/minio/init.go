package minio

import (
	"CampaignLens/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

const (
	reportPrefix    = "reports/"
	retentionRuleID = "ReportRetentionRule"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// ReportBucket 报表导出存储桶
	ReportBucket string
)

// Init 初始化 MinIO 客户端
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.ReportBucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.ReportBucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.ReportBucket, err)
		}
		log.Info("Created report bucket", "bucket", cfg.ReportBucket)
	}

	Client = client
	ReportBucket = cfg.ReportBucket
	if cfg.RetentionDays <= 0 {
		return nil
	}
	return EnsureReportLifecycle(ctx, cfg.RetentionDays)
}

// EnsureReportLifecycle 导出文件在 days 天后自动过期
func EnsureReportLifecycle(ctx context.Context, days int) error {
	lcConfig, err := Client.GetBucketLifecycle(ctx, ReportBucket)
	if err != nil {
		lcConfig = lifecycle.NewConfiguration()
	}

	targetDays := lifecycle.ExpirationDays(days)
	rules := make([]lifecycle.Rule, 0, len(lcConfig.Rules)+1)
	for _, rule := range lcConfig.Rules {
		if rule.Status == "Enabled" &&
			rule.Expiration.Days == targetDays &&
			rule.RuleFilter.Prefix == reportPrefix {
			log.Info("检测到已存在兼容的过期策略", "ruleID", rule.ID)
			return nil
		}
		if rule.ID != retentionRuleID {
			rules = append(rules, rule)
		}
	}

	rules = append(rules, lifecycle.Rule{
		ID:     retentionRuleID,
		Status: "Enabled",
		RuleFilter: lifecycle.Filter{
			Prefix: reportPrefix,
		},
		Expiration: lifecycle.Expiration{
			Days: targetDays,
		},
	})
	lcConfig.Rules = rules

	if err = Client.SetBucketLifecycle(ctx, ReportBucket, lcConfig); err != nil {
		return fmt.Errorf("设置生命周期失败: %w", err)
	}
	log.Info("已设置报表过期策略", "days", days)
	return nil
}
