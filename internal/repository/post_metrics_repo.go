package repository

import (
	"CampaignLens/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostMetricsRepo interface {
	SaveOrUpdateMetrics(ctx context.Context, metrics *model.PostMetrics) error
}

type postMetricsRepoImpl struct {
	db *gorm.DB
}

func NewPostMetricsRepository(db *gorm.DB) PostMetricsRepo {
	return &postMetricsRepoImpl{db: db}
}

// SaveOrUpdateMetrics 采用 Upsert 逻辑。如果 post_id 已存在，则更新各项数值
func (r *postMetricsRepoImpl) SaveOrUpdateMetrics(ctx context.Context, metrics *model.PostMetrics) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"impressions",
			"likes",
			"comments",
			"shares",
			"saves",
			"clicks",
			"updated_at",
		}),
	}).Create(metrics).Error
}
