package handler

import (
	"go.uber.org/zap"

	"student-score/backend/config"
	"student-score/backend/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Student *StudentHandler
	Score   *ScoreHandler
	Report  *ReportHandler
	Export  *ExportHandler
	Page    *PageHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth, cfg.Session.Cookie),
		Student: NewStudentHandler(svc.Student),
		Score:   NewScoreHandler(svc.Score),
		Report:  NewReportHandler(svc.Report),
		Export:  NewExportHandler(svc.Export),
		Page:    NewPageHandler(svc.Auth, cfg.Session.Cookie.Name, cfg.Server.FrontendDir, logger),
	}
}
