package repository

import (
	"CampaignLens/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ObjectiveRepo interface {
	GetObjectives(ctx context.Context) ([]*model.Objective, error)
	GetObjective(ctx context.Context, id uint64) (*model.Objective, error)
	CreateObjective(ctx context.Context, objective *model.Objective) error
}

type objectiveRepoImpl struct {
	db *gorm.DB
}

func NewObjectiveRepo(db *gorm.DB) ObjectiveRepo {
	return &objectiveRepoImpl{db: db}
}

func (r *objectiveRepoImpl) GetObjectives(ctx context.Context) ([]*model.Objective, error) {
	objectives := make([]*model.Objective, 0)
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *objectiveRepoImpl) GetObjective(ctx context.Context, id uint64) (*model.Objective, error) {
	var objective model.Objective
	err := r.db.WithContext(ctx).First(&objective, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &objective, nil
}

// CreateObjective 名称或 slug 重复时返回 gorm.ErrDuplicatedKey
func (r *objectiveRepoImpl) CreateObjective(ctx context.Context, objective *model.Objective) error {
	return r.db.WithContext(ctx).Create(objective).Error
}
