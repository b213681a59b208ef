package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/es"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/repository"
	"context"
	log "log/slog"
	"strings"
)

type PostService interface {
	GetPost(ctx context.Context, userID uint64, postID uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, userID uint64, dto *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
	UpdatePostMetrics(ctx context.Context, userID uint64, postID uint64, dto *dto.PostMetricsDTO) error
	SearchPosts(ctx context.Context, userID uint64, dto *dto.PostSearchDTO) (*dto.PostSearchResultDTO, error)
	IngestPostMetrics(ctx context.Context, metrics *model.PostMetrics) error
}

type postServiceImpl struct {
	postESRepo   es.PostRepo
	postDBRepo   repository.PostRepo
	metricsRepo  repository.PostMetricsRepo
	campaignRepo repository.CampaignRepo
	cache        Cache
}

// NewPostService postESRepo 为 nil 时检索不可用
func NewPostService(
	postESRepo es.PostRepo,
	postDBRepo repository.PostRepo,
	metricsRepo repository.PostMetricsRepo,
	campaignRepo repository.CampaignRepo,
	cache Cache,
) PostService {
	return &postServiceImpl{
		postESRepo:   postESRepo,
		postDBRepo:   postDBRepo,
		metricsRepo:  metricsRepo,
		campaignRepo: campaignRepo,
		cache:        cache,
	}
}

func (s *postServiceImpl) GetPost(ctx context.Context, userID uint64, postID uint64) (*dto.PostDTO, error) {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(post), nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, in *dto.PostBaseDTO) (*dto.PostDTO, error) {
	contentType := strings.ToUpper(in.ContentType)
	if !validContentType(contentType) {
		return nil, ErrContentTypeInvalid
	}
	postDate, err := util.ParseDate(in.PostDate)
	if err != nil {
		return nil, ErrParamInvalid
	}

	campaign, err := s.campaignRepo.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil || campaign.Channel.OwnerID != userID {
		return nil, ErrCampaignNotFound
	}

	post := &model.Post{
		CampaignID:  campaign.ID,
		PostDate:    postDate,
		ContentType: contentType,
		Caption:     in.Caption,
		URL:         in.URL,
	}
	if err = s.postDBRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	post.Campaign = *campaign

	markPostsDirty(ctx, s.cache, post.ID)
	bumpReportVersion(ctx, s.cache, userID)
	return toPostDTO(post), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	if err = s.postDBRepo.DeletePost(ctx, post.ID); err != nil {
		return err
	}
	markPostsDirty(ctx, s.cache, post.ID)
	bumpReportVersion(ctx, s.cache, userID)
	return nil
}

// UpdatePostMetrics 手动录入或覆盖帖子指标
func (s *postServiceImpl) UpdatePostMetrics(ctx context.Context, userID uint64, postID uint64, in *dto.PostMetricsDTO) error {
	post, err := s.getOwnedPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	metrics := &model.PostMetrics{
		PostID:      post.ID,
		Impressions: in.Impressions,
		Likes:       in.Likes,
		Comments:    in.Comments,
		Shares:      in.Shares,
		Saves:       in.Saves,
		Clicks:      in.Clicks,
	}
	if err = s.saveMetrics(ctx, post, metrics); err != nil {
		return err
	}
	return nil
}

// IngestPostMetrics 消费外部指标事件，帖子不存在时返回 ErrPostNotFound
func (s *postServiceImpl) IngestPostMetrics(ctx context.Context, metrics *model.PostMetrics) error {
	if metrics.Impressions < 0 || metrics.Likes < 0 || metrics.Comments < 0 ||
		metrics.Shares < 0 || metrics.Saves < 0 || metrics.Clicks < 0 {
		return ErrParamInvalid
	}
	post, err := s.postDBRepo.GetPost(ctx, metrics.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return s.saveMetrics(ctx, post, metrics)
}

func (s *postServiceImpl) saveMetrics(ctx context.Context, post *model.Post, metrics *model.PostMetrics) error {
	if err := s.metricsRepo.SaveOrUpdateMetrics(ctx, metrics); err != nil {
		return err
	}
	markPostsDirty(ctx, s.cache, post.ID)
	bumpReportVersion(ctx, s.cache, post.Campaign.Channel.OwnerID)
	return nil
}

func (s *postServiceImpl) SearchPosts(ctx context.Context, userID uint64, in *dto.PostSearchDTO) (*dto.PostSearchResultDTO, error) {
	if s.postESRepo == nil {
		return nil, ErrSearchUnavailable
	}
	contentType := strings.ToUpper(strings.TrimSpace(in.ContentType))
	if contentType != "" && !validContentType(contentType) {
		return nil, ErrContentTypeInvalid
	}

	docs, total, err := s.postESRepo.SearchPosts(ctx, &es.PostSearchQuery{
		OwnerID:     userID,
		Keyword:     in.Keyword,
		ContentType: contentType,
		From:        (in.Page - 1) * in.PageSize,
		Size:        in.PageSize,
	})
	if err != nil {
		log.ErrorContext(ctx, "search posts error", "user_id", userID, "err", err)
		return nil, ErrSearchUnavailable
	}

	res := &dto.PostSearchResultDTO{
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
		Posts:    make([]*dto.PostDTO, 0, len(docs)),
	}
	for _, doc := range docs {
		res.Posts = append(res.Posts, esToPostDTO(doc))
	}
	return res, nil
}

func (s *postServiceImpl) getOwnedPost(ctx context.Context, userID uint64, postID uint64) (*model.Post, error) {
	post, err := s.postDBRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Campaign.Channel.OwnerID != userID {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func validContentType(t string) bool {
	switch t {
	case model.ContentTypeImage, model.ContentTypeVideo, model.ContentTypeReel,
		model.ContentTypeStory, model.ContentTypeCarousel:
		return true
	}
	return false
}

func esToPostDTO(doc *es.PostES) *dto.PostDTO {
	out := &dto.PostDTO{
		ID:           doc.ID,
		CampaignID:   doc.CampaignID,
		CampaignName: doc.CampaignName,
		PostDate:     doc.PostDate,
		ContentType:  doc.ContentType,
		Caption:      doc.Caption,
		URL:          doc.URL,
	}
	if m := doc.Metrics; m != nil {
		out.Metrics = &dto.PostMetricsDTO{
			Impressions: m.Impressions,
			Likes:       m.Likes,
			Comments:    m.Comments,
			Shares:      m.Shares,
			Saves:       m.Saves,
			Clicks:      m.Clicks,
		}
	}
	return out
}
