package service

import (
	"context"

	"go.uber.org/zap"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/repository"
)

// ReportService 统计查询业务接口
type ReportService interface {
	// ScoreStatistics 各专业课程成绩统计
	ScoreStatistics(ctx context.Context) ([]dto.ScoreStatResponse, error)
	// CoursePassRate 按年级统计各课程及格率
	CoursePassRate(ctx context.Context) ([]dto.PassRateResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) ScoreStatistics(ctx context.Context) ([]dto.ScoreStatResponse, error) {
	rows, err := s.repo.Report.ScoreStatistics(ctx)
	if err != nil {
		logStoreError(s.logger, "成绩统计查询失败", err)
		return nil, err
	}

	result := make([]dto.ScoreStatResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ScoreStatResponse{
			Major:        r.Major,
			Course:       r.Course,
			AvgScore:     r.AvgScore,
			MaxScore:     r.MaxScore,
			MinScore:     r.MinScore,
			StudentCount: r.StudentCount,
		})
	}
	return result, nil
}

func (s *reportService) CoursePassRate(ctx context.Context) ([]dto.PassRateResponse, error) {
	rows, err := s.repo.Report.CoursePassRate(ctx)
	if err != nil {
		logStoreError(s.logger, "及格率查询失败", err)
		return nil, err
	}

	result := make([]dto.PassRateResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.PassRateResponse{
			Grade:         r.Grade,
			Course:        r.Course,
			TotalStudents: r.TotalStudents,
			PassStudents:  r.PassStudents,
			PassRate:      r.PassRate,
		})
	}
	return result, nil
}
