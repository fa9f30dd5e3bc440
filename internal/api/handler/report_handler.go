package handler

import (
	"github.com/gin-gonic/gin"

	"student-score/backend/internal/service"
	"student-score/backend/pkg/response"
)

// ReportHandler 统计查询 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// ScoreStatistics 各专业课程成绩统计
// GET /api/complex/score-stat
func (h *ReportHandler) ScoreStatistics(c *gin.Context) {
	stats, err := h.reportSvc.ScoreStatistics(c.Request.Context())
	if err != nil {
		response.InternalError(c, "查询失败："+err.Error())
		return
	}
	response.OK(c, stats)
}

// CoursePassRate 按年级统计各课程及格率
// GET /api/complex/pass-rate
func (h *ReportHandler) CoursePassRate(c *gin.Context) {
	rates, err := h.reportSvc.CoursePassRate(c.Request.Context())
	if err != nil {
		response.InternalError(c, "查询失败："+err.Error())
		return
	}
	response.OK(c, rates)
}
