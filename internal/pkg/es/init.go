package es

import (
	"CampaignLens/internal/api/config"
	"CampaignLens/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var PostIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient 初始化 Elasticsearch 客户端并确保帖子索引存在
func InitClient() error {
	elasticCfg := config.Cfg.Elastic

	PostIndex = elasticCfg.Indices.PostIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: logger.NewESTransport(
			http.DefaultTransport,
			time.Duration(elasticCfg.SlowThresholdMs)*time.Millisecond,
		),
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	ctx := context.Background()
	info, err := Client.Info().Do(ctx)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}
	log.Info("Connected to Elasticsearch", "version", info.Version.Int)

	return ensurePostIndex(ctx)
}

func ensurePostIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(PostIndex).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = Client.Indices.Create(PostIndex).Mappings(postMapping()).Do(ctx)
	if err != nil {
		log.Error("Create post index error", "index", PostIndex, "err", err)
		return err
	}
	log.Info("Created post index", "index", PostIndex)
	return nil
}

func postMapping() *types.TypeMapping {
	metrics := types.NewObjectProperty()
	metrics.Properties = map[string]types.Property{
		"impressions": types.NewLongNumberProperty(),
		"likes":       types.NewLongNumberProperty(),
		"comments":    types.NewLongNumberProperty(),
		"shares":      types.NewLongNumberProperty(),
		"saves":       types.NewLongNumberProperty(),
		"clicks":      types.NewLongNumberProperty(),
	}

	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":            types.NewLongNumberProperty(),
			"owner_id":      types.NewLongNumberProperty(),
			"channel_id":    types.NewLongNumberProperty(),
			"channel_name":  types.NewKeywordProperty(),
			"campaign_id":   types.NewLongNumberProperty(),
			"campaign_name": types.NewTextProperty(),
			"content_type":  types.NewKeywordProperty(),
			"caption":       types.NewTextProperty(),
			"url":           types.NewKeywordProperty(),
			"post_date":     types.NewDateProperty(),
			"metrics":       metrics,
			"updated_at":    types.NewDateProperty(),
		},
	}
}
