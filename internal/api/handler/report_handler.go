package handler

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// CampaignPerformance 活动表现报表，筛选参数无效时不生效而非报错
func (s *ReportHandler) CampaignPerformance(c *gin.Context) {
	var query dto.ReportQueryDTO
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}
	report, err := s.reportSvc.GetCampaignPerformance(c.Request.Context(), currentUserID(c), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ReportHandler) ExportCampaignPerformance(c *gin.Context) {
	var query dto.ReportQueryDTO
	if err := bindQuery(c, &query); err != nil {
		response.Error(c, err)
		return
	}
	export, err := s.reportSvc.ExportCampaignPerformance(c.Request.Context(), currentUserID(c), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, export)
}

func (s *ReportHandler) ListExports(c *gin.Context) {
	var req dto.ReportExportListQueryDTO
	if err := bindQuery(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	exports, err := s.reportSvc.ListExports(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, exports)
}
