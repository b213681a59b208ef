package service

import (
	"CampaignLens/internal/pkg/consts"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

// Cache 服务层依赖的缓存能力，由 Redis 实现
type Cache interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	AddSet(ctx context.Context, key string, members ...interface{}) error
}

// bumpReportVersion 用户数据变更后使其报表缓存失效
func bumpReportVersion(ctx context.Context, cache Cache, ownerID uint64) {
	if cache == nil {
		return
	}
	if _, err := cache.Incr(ctx, consts.ReportVersionKey+strconv.FormatUint(ownerID, 10)); err != nil {
		log.WarnContext(ctx, "bump report version error", "owner_id", ownerID, "err", err)
	}
}

// markPostsDirty 标记需要重建搜索索引的帖子
func markPostsDirty(ctx context.Context, cache Cache, postIDs ...uint64) {
	if cache == nil || len(postIDs) == 0 {
		return
	}
	members := make([]interface{}, 0, len(postIDs))
	for _, id := range postIDs {
		members = append(members, strconv.FormatUint(id, 10))
	}
	if err := cache.AddSet(ctx, consts.PostIndexDirtyKey, members...); err != nil {
		log.WarnContext(ctx, "mark post dirty error", "post_ids", postIDs, "err", err)
	}
}
