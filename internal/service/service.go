package service

import (
	"errors"

	"go.uber.org/zap"

	"student-score/backend/internal/metrics"
	"student-score/backend/internal/repository"
	pkgerrors "student-score/backend/pkg/errors"
	"student-score/backend/pkg/session"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Student StudentService
	Score   ScoreService
	Report  ReportService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	sessMgr *session.Manager,
	logger *zap.Logger,
) *Service {
	score := NewScoreService(repo, logger)
	return &Service{
		Auth:    NewAuthService(repo, sessMgr, logger),
		Student: NewStudentService(repo, logger),
		Score:   score,
		Report:  NewReportService(repo, logger),
		Export:  NewExportService(score, logger),
	}
}

// logStoreError 记录存储失败并计数
func logStoreError(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	var se *pkgerrors.StoreError
	if errors.As(err, &se) {
		metrics.StoreErrorsTotal.WithLabelValues(se.Op).Inc()
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
}
