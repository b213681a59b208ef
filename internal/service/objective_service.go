package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/repository"
	"context"
	"strings"
)

type ObjectiveService interface {
	GetObjectives(ctx context.Context) ([]*dto.ObjectiveDTO, error)
	CreateObjective(ctx context.Context, dto *dto.ObjectiveBaseDTO) (*dto.ObjectiveDTO, error)
}

type objectiveServiceImpl struct {
	objectiveRepo repository.ObjectiveRepo
}

func NewObjectiveService(objectiveRepo repository.ObjectiveRepo) ObjectiveService {
	return &objectiveServiceImpl{objectiveRepo: objectiveRepo}
}

func (s *objectiveServiceImpl) GetObjectives(ctx context.Context) ([]*dto.ObjectiveDTO, error) {
	objectives, err := s.objectiveRepo.GetObjectives(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ObjectiveDTO, 0, len(objectives))
	for _, o := range objectives {
		res = append(res, toObjectiveDTO(o))
	}
	return res, nil
}

func (s *objectiveServiceImpl) CreateObjective(ctx context.Context, in *dto.ObjectiveBaseDTO) (*dto.ObjectiveDTO, error) {
	slug := util.Slugify(in.Slug)
	if slug == "" {
		slug = util.Slugify(in.Name)
	}
	if slug == "" {
		return nil, ErrParamInvalid
	}

	objective := &model.Objective{
		Name:        strings.TrimSpace(in.Name),
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.objectiveRepo.CreateObjective(ctx, objective); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrObjectiveExist
		}
		return nil, err
	}
	return toObjectiveDTO(objective), nil
}
