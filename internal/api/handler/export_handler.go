package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/service"
	"student-score/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportScores 导出成绩表
// GET /api/export/scores?student_id=
func (h *ExportHandler) ExportScores(c *gin.Context) {
	studentID, ok := ParseStudentIDQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportScores(c.Request.Context(), &dto.ScoreListRequest{StudentID: studentID})
	if err != nil {
		response.InternalError(c, "导出失败："+err.Error())
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
