package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/metrics"
	"student-score/backend/internal/model"
	"student-score/backend/internal/repository"
	"student-score/backend/internal/validate"
)

// ── 成绩模块业务错误 ──

var (
	ErrScoreNotFound        = errors.New("成绩记录不存在")
	ErrScoreStudentNotFound = errors.New("关联的学生不存在")
)

// ScoreService 成绩业务接口
type ScoreService interface {
	Create(ctx context.Context, req *dto.CreateScoreRequest) (int64, error)
	// List 返回成绩列表，每行附带学生姓名
	List(ctx context.Context, req *dto.ScoreListRequest) ([]dto.ScoreResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateScoreRequest) error
	Delete(ctx context.Context, id int64) error
}

type scoreService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScoreService 创建 ScoreService 实例
func NewScoreService(repo *repository.Repository, logger *zap.Logger) ScoreService {
	return &scoreService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scoreService) Create(ctx context.Context, req *dto.CreateScoreRequest) (int64, error) {
	// 1. 必填字段
	if err := validate.ScoreCreateRequired(req); err != nil {
		return 0, err
	}

	// 2. 关联学生必须存在，先于取值校验
	if _, err := s.repo.Student.GetByID(ctx, *req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrScoreStudentNotFound
		}
		logStoreError(s.logger, "查询学生失败", err, zap.Int64("student_id", *req.StudentID))
		return 0, err
	}

	// 3. 成绩范围与日期格式
	if err := validate.ScoreCreate(req); err != nil {
		return 0, err
	}
	examTime, err := model.ParseDate(*req.ExamTime)
	if err != nil {
		return 0, &validate.Error{Kind: validate.BadDateFormat, Field: "exam_time"}
	}

	// 4. 写入
	score := &model.Score{
		StudentID: *req.StudentID,
		Course:    *req.Course,
		Score:     *req.Score,
		ExamTime:  examTime,
	}
	if err := s.repo.Score.Create(ctx, score); err != nil {
		logStoreError(s.logger, "创建成绩失败", err, zap.Int64("student_id", score.StudentID))
		return 0, err
	}

	metrics.ScoreHistogram.Observe(float64(score.Score))
	return score.ScoreID, nil
}

// ────────────────────── List ──────────────────────

func (s *scoreService) List(ctx context.Context, req *dto.ScoreListRequest) ([]dto.ScoreResponse, error) {
	scores, err := s.repo.Score.List(ctx, repository.ScoreFilter{StudentID: req.StudentID})
	if err != nil {
		logStoreError(s.logger, "查询成绩列表失败", err)
		return nil, err
	}

	// 批量查询学生姓名
	seen := make(map[int64]bool, len(scores))
	ids := make([]int64, 0, len(scores))
	for _, sc := range scores {
		if !seen[sc.StudentID] {
			seen[sc.StudentID] = true
			ids = append(ids, sc.StudentID)
		}
	}
	names, err := s.repo.Student.NamesByIDs(ctx, ids)
	if err != nil {
		logStoreError(s.logger, "查询学生姓名失败", err)
		return nil, err
	}

	result := make([]dto.ScoreResponse, 0, len(scores))
	for _, sc := range scores {
		name, ok := names[sc.StudentID]
		if !ok {
			name = repository.UnknownStudentName
		}
		result = append(result, dto.ScoreResponse{
			ScoreID:     sc.ScoreID,
			StudentID:   sc.StudentID,
			StudentName: name,
			Course:      sc.Course,
			Score:       sc.Score,
			ExamTime:    sc.ExamTime.Format(model.DateLayout),
		})
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *scoreService) Update(ctx context.Context, id int64, req *dto.UpdateScoreRequest) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	// 任一字段校验失败则整体放弃
	if err := validate.ScoreUpdate(req); err != nil {
		return err
	}

	fields := make(map[string]interface{})
	if req.Course != nil {
		fields["course"] = *req.Course
	}
	if req.Score != nil {
		fields["score"] = *req.Score
	}
	if req.ExamTime != nil {
		examTime, err := model.ParseDate(*req.ExamTime)
		if err != nil {
			return &validate.Error{Kind: validate.BadDateFormat, Field: "exam_time"}
		}
		fields["exam_time"] = examTime
	}

	if err := s.repo.Score.Update(ctx, id, fields); err != nil {
		logStoreError(s.logger, "更新成绩失败", err, zap.Int64("score_id", id))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *scoreService) Delete(ctx context.Context, id int64) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Score.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "删除成绩失败", err, zap.Int64("score_id", id))
		return err
	}
	return nil
}

func (s *scoreService) ensureExists(ctx context.Context, id int64) error {
	if _, err := s.repo.Score.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScoreNotFound
		}
		logStoreError(s.logger, "查询成绩失败", err, zap.Int64("score_id", id))
		return err
	}
	return nil
}
