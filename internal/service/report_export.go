package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/mongo"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ReportStorage 报表文件存储，由 MinIO 实现
type ReportStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

var reportCSVHeader = []string{
	"campaign_id", "campaign", "channel", "start_date",
	"impressions", "likes", "comments", "shares", "clicks",
	"engagement_rate", "ctr",
}

func (s *reportServiceImpl) ExportCampaignPerformance(ctx context.Context, userID uint64, query *dto.ReportQueryDTO) (*dto.ReportExportDTO, error) {
	if s.storage == nil {
		return nil, ErrExportUnavailable
	}

	report, err := s.GetCampaignPerformance(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err = WriteReportCSV(&buf, report.Results); err != nil {
		return nil, err
	}

	now := time.Now()
	objectName := fmt.Sprintf("reports/%d/%s/%s.csv", userID, now.Format("2006/01/02"), uuid.NewString())
	key, err := s.storage.UploadFile(ctx, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), consts.ReportCSVContentType)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignedGetURL(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, err
	}

	s.recordExport(ctx, &mongo.ExportRecord{
		UserID:    userID,
		ObjectKey: key,
		Channel:   report.SelectedChannelID,
		StartDate: report.StartDate,
		EndDate:   report.EndDate,
		Rows:      len(report.Results),
		CreatedAt: now,
	})

	return &dto.ReportExportDTO{
		ObjectKey: key,
		URL:       url,
		ExpiresAt: now.Add(s.presignExpiry),
		Rows:      len(report.Results),
	}, nil
}

// recordExport 导出记录写入失败不影响本次导出
func (s *reportServiceImpl) recordExport(ctx context.Context, record *mongo.ExportRecord) {
	if s.exportRepo == nil {
		return
	}
	if err := s.exportRepo.CreateRecord(ctx, record); err != nil {
		log.WarnContext(ctx, "save export record error", "object_key", record.ObjectKey, "err", err)
	}
}

func (s *reportServiceImpl) ListExports(ctx context.Context, userID uint64, query *dto.ReportExportListQueryDTO) (*dto.ReportExportListDTO, error) {
	if s.exportRepo == nil || s.storage == nil {
		return nil, ErrExportUnavailable
	}
	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total, err := s.exportRepo.CountRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.exportRepo.GetRecordList(ctx, userID, int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		return nil, err
	}

	res := &dto.ReportExportListDTO{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Exports:  make([]*dto.ReportExportRecordDTO, 0, len(records)),
	}
	for _, r := range records {
		url, err := s.storage.PresignedGetURL(ctx, r.ObjectKey, s.presignExpiry)
		if err != nil {
			return nil, err
		}
		res.Exports = append(res.Exports, &dto.ReportExportRecordDTO{
			ID:        r.ID.Hex(),
			ObjectKey: r.ObjectKey,
			URL:       url,
			Channel:   r.Channel,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Rows:      r.Rows,
			CreatedAt: r.CreatedAt,
		})
	}
	return res, nil
}

// WriteReportCSV 按报表顺序写出 CSV
func WriteReportCSV(w io.Writer, rows []*dto.CampaignPerformanceDTO) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportCSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(r.CampaignID, 10),
			r.CampaignName,
			r.ChannelName,
			r.StartDate,
			strconv.FormatInt(r.TotalImpressions, 10),
			strconv.FormatInt(r.TotalLikes, 10),
			strconv.FormatInt(r.TotalComments, 10),
			strconv.FormatInt(r.TotalShares, 10),
			strconv.FormatInt(r.TotalClicks, 10),
			strconv.FormatFloat(r.EngagementRate, 'f', 4, 64),
			strconv.FormatFloat(r.CTR, 'f', 4, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
