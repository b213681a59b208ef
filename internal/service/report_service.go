package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/analytics"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/mongo"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/repository"
	"context"
	"crypto/sha1"
	"encoding/hex"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type ReportService interface {
	// GetCampaignPerformance 汇总用户名下活动的帖子指标并按总曝光降序排列
	GetCampaignPerformance(ctx context.Context, userID uint64, query *dto.ReportQueryDTO) (*dto.CampaignReportDTO, error)
	// ExportCampaignPerformance 将报表导出为 CSV 并上传至对象存储
	ExportCampaignPerformance(ctx context.Context, userID uint64, query *dto.ReportQueryDTO) (*dto.ReportExportDTO, error)
	// ListExports 分页查询导出记录，并重新签发下载链接
	ListExports(ctx context.Context, userID uint64, query *dto.ReportExportListQueryDTO) (*dto.ReportExportListDTO, error)
}

type reportServiceImpl struct {
	channelRepo   repository.ChannelRepo
	campaignRepo  repository.CampaignRepo
	postRepo      repository.PostRepo
	cache         Cache
	storage       ReportStorage
	exportRepo    mongo.ExportRecordRepo
	cacheTTL      time.Duration
	presignExpiry time.Duration
}

// NewReportService cache 与 storage 可为 nil，此时分别跳过缓存与禁用导出；exportRepo 为 nil 时不记录导出历史
func NewReportService(
	channelRepo repository.ChannelRepo,
	campaignRepo repository.CampaignRepo,
	postRepo repository.PostRepo,
	cache Cache,
	storage ReportStorage,
	exportRepo mongo.ExportRecordRepo,
	cacheTTL time.Duration,
	presignExpiry time.Duration,
) ReportService {
	return &reportServiceImpl{
		channelRepo:   channelRepo,
		campaignRepo:  campaignRepo,
		postRepo:      postRepo,
		cache:         cache,
		storage:       storage,
		exportRepo:    exportRepo,
		cacheTTL:      cacheTTL,
		presignExpiry: presignExpiry,
	}
}

func (s *reportServiceImpl) GetCampaignPerformance(ctx context.Context, userID uint64, query *dto.ReportQueryDTO) (*dto.CampaignReportDTO, error) {
	if query == nil {
		query = &dto.ReportQueryDTO{}
	}
	filter := analytics.ParseFilter(query.Channel, query.StartDate, query.EndDate)

	// 非法日期不生效，仅记录原始值
	if filter.StartDateIgnored() {
		log.WarnContext(ctx, "ignore invalid start_date filter", "user_id", userID, "start_date", filter.RawStartDate)
	}
	if filter.EndDateIgnored() {
		log.WarnContext(ctx, "ignore invalid end_date filter", "user_id", userID, "end_date", filter.RawEndDate)
	}

	key := s.cacheKey(ctx, userID, filter)
	if key != "" {
		if val, err := s.cache.GetValue(ctx, key); err == nil && val != "" {
			var res dto.CampaignReportDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	report, err := s.buildReport(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if payload, err := json.Marshal(report); err == nil {
			if err = s.cache.SetWithExpiration(ctx, key, payload, s.cacheTTL); err != nil {
				log.WarnContext(ctx, "cache campaign report error", "key", key, "err", err)
			}
		}
	}

	return report, nil
}

// buildReport 先按条件读取候选活动与帖子，再在内存中聚合
func (s *reportServiceImpl) buildReport(ctx context.Context, userID uint64, filter analytics.Filter) (*dto.CampaignReportDTO, error) {
	channels, err := s.channelRepo.GetChannelsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := &dto.CampaignReportDTO{
		Results:           make([]*dto.CampaignPerformanceDTO, 0),
		Channels:          toChannelDTOs(channels),
		SelectedChannelID: filter.RawChannel,
		StartDate:         filter.RawStartDate,
		EndDate:           filter.RawEndDate,
	}
	if filter.ChannelInvalid {
		return report, nil
	}

	campaigns, err := s.campaignRepo.FindCampaigns(ctx, repository.CampaignQuery{
		OwnerID:   userID,
		ChannelID: filter.ChannelID,
		StartFrom: filter.StartDate,
		StartTo:   filter.EndDate,
	})
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return report, nil
	}

	campaignIDs := make([]uint64, 0, len(campaigns))
	for _, c := range campaigns {
		campaignIDs = append(campaignIDs, c.ID)
	}
	posts, err := s.postRepo.GetPostsByCampaignIds(ctx, campaignIDs)
	if err != nil {
		return nil, err
	}

	for _, row := range analytics.Aggregate(campaigns, analytics.GroupByCampaign(posts)) {
		report.Results = append(report.Results, &dto.CampaignPerformanceDTO{
			CampaignID:       row.Campaign.ID,
			CampaignName:     row.Campaign.Name,
			ChannelID:        row.Campaign.ChannelID,
			ChannelName:      row.Campaign.Channel.Name,
			StartDate:        util.FormatDate(row.Campaign.StartDate),
			TotalImpressions: row.Totals.Impressions,
			TotalLikes:       row.Totals.Likes,
			TotalComments:    row.Totals.Comments,
			TotalShares:      row.Totals.Shares,
			TotalClicks:      row.Totals.Clicks,
			EngagementRate:   row.EngagementRate,
			CTR:              row.ClickThrough,
		})
	}

	return report, nil
}

// cacheKey 缓存键包含用户报表版本号，任一写操作递增版本即可让旧缓存失效
func (s *reportServiceImpl) cacheKey(ctx context.Context, userID uint64, filter analytics.Filter) string {
	if s.cache == nil || s.cacheTTL <= 0 {
		return ""
	}
	uid := strconv.FormatUint(userID, 10)
	version, err := s.cache.GetValue(ctx, consts.ReportVersionKey+uid)
	if err != nil {
		log.WarnContext(ctx, "get report version error", "user_id", userID, "err", err)
		return ""
	}
	if version == "" {
		version = "0"
	}

	sum := sha1.Sum([]byte(filter.RawChannel + "\x00" + filter.RawStartDate + "\x00" + filter.RawEndDate))
	return consts.ReportCampaignKey + uid + ":v" + version + ":" + hex.EncodeToString(sum[:])
}
