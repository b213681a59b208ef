package job

import (
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/es"
	"CampaignLens/internal/pkg/logger"
	"CampaignLens/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

// DirtySet 待同步帖子集合
type DirtySet interface {
	MoveSet(ctx context.Context, src string, dst string) error
	GetSet(ctx context.Context, key string) ([]string, error)
	AddSet(ctx context.Context, key string, members ...interface{}) error
	DeleteKey(ctx context.Context, key string) error
}

// PostIndexJob 将变更过的帖子同步到搜索索引
type PostIndexJob struct {
	dirty      DirtySet
	postDBRepo repository.PostRepo
	postESRepo es.PostRepo
}

func NewPostIndexJob(dirty DirtySet, postDBRepo repository.PostRepo, postESRepo es.PostRepo) *PostIndexJob {
	return &PostIndexJob{
		dirty:      dirty,
		postDBRepo: postDBRepo,
		postESRepo: postESRepo,
	}
}

// Run 脏集合并入 processing 集合后处理，只有全部处理或重新入队成功才删除 processing，
// 中途失败时保留的集合会在下一轮与新的脏集合合并
func (s *PostIndexJob) Run() {
	ctx := logger.WithTrace(context.Background(), "job-post-index")

	processingKey := consts.PostIndexDirtyKey + ":processing"
	if err := s.dirty.MoveSet(ctx, consts.PostIndexDirtyKey, processingKey); err != nil {
		log.ErrorContext(ctx, "move post index dirty set error", "err", err)
		return
	}

	members, err := s.dirty.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get post index processing set error", "err", err)
		return
	}
	if len(members) == 0 {
		return
	}

	postIDs := parsePostIDs(ctx, members)
	indexed, deleted, failed := s.sync(ctx, postIDs)

	if len(failed) > 0 {
		requeue := make([]interface{}, 0, len(failed))
		for _, id := range failed {
			requeue = append(requeue, strconv.FormatUint(id, 10))
		}
		if err = s.dirty.AddSet(ctx, consts.PostIndexDirtyKey, requeue...); err != nil {
			log.ErrorContext(ctx, "requeue failed posts error", "post_ids", failed, "err", err)
			return
		}
	}

	if err = s.dirty.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete post index processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync post index success",
		"indexed", indexed,
		"deleted", deleted,
		"failed", len(failed))
}

// parsePostIDs 非法成员记日志后丢弃
func parsePostIDs(ctx context.Context, members []string) []uint64 {
	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			log.WarnContext(ctx, "skip invalid post id in dirty set", "member", m)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// sync 数据库中仍存在的帖子重建索引，已删除的从索引移除
func (s *PostIndexJob) sync(ctx context.Context, postIDs []uint64) (indexed, deleted int, failed []uint64) {
	if len(postIDs) == 0 {
		return 0, 0, nil
	}

	posts, err := s.postDBRepo.GetPostsByIds(ctx, postIDs)
	if err != nil {
		log.ErrorContext(ctx, "load dirty posts error", "err", err)
		return 0, 0, postIDs
	}

	version := time.Now().UnixMilli()
	found := make(map[uint64]struct{}, len(posts))
	for _, post := range posts {
		found[post.ID] = struct{}{}
		if err = s.postESRepo.IndexPost(ctx, es.BuildPostES(post), version); err != nil {
			log.ErrorContext(ctx, "index post error", "pid", post.ID, "err", err)
			failed = append(failed, post.ID)
			continue
		}
		indexed++
	}

	for _, pid := range postIDs {
		if _, ok := found[pid]; ok {
			continue
		}
		if err = s.postESRepo.DeletePost(ctx, pid); err != nil {
			log.ErrorContext(ctx, "delete post from index error", "pid", pid, "err", err)
			failed = append(failed, pid)
			continue
		}
		deleted++
	}
	return indexed, deleted, failed
}
