package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/model"
	"student-score/backend/internal/repository"
	"student-score/backend/internal/validate"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
)

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	// Delete 删除学生及其全部成绩
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	if err := validate.StudentCreate(req); err != nil {
		return 0, err
	}

	student := &model.Student{
		Name:   *req.Name,
		Gender: *req.Gender,
		Grade:  *req.Grade,
		Major:  *req.Major,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		logStoreError(s.logger, "创建学生失败", err)
		return 0, err
	}

	return student.StudentID, nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx, repository.StudentFilter{
		Grade: req.Grade,
		Major: req.Major,
	})
	if err != nil {
		logStoreError(s.logger, "查询学生列表失败", err)
		return nil, err
	}

	ids := make([]int64, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.StudentID)
	}
	counts, err := s.repo.Score.CountByStudentIDs(ctx, ids)
	if err != nil {
		logStoreError(s.logger, "统计成绩条数失败", err)
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		result = append(result, dto.StudentResponse{
			StudentID:  st.StudentID,
			Name:       st.Name,
			Gender:     st.Gender,
			Grade:      st.Grade,
			Major:      st.Major,
			CreateTime: st.CreateTime.Format(model.DateTimeLayout),
			ScoreCount: counts[st.StudentID],
		})
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Grade != nil {
		fields["grade"] = *req.Grade
	}
	if req.Major != nil {
		fields["major"] = *req.Major
	}

	if err := s.repo.Student.Update(ctx, id, fields); err != nil {
		logStoreError(s.logger, "更新学生失败", err, zap.Int64("student_id", id))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		logStoreError(s.logger, "删除学生失败", err, zap.Int64("student_id", id))
		return err
	}
	return nil
}

// ensureExists 学生不存在时返回 ErrStudentNotFound
func (s *studentService) ensureExists(ctx context.Context, id int64) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		logStoreError(s.logger, "查询学生失败", err, zap.Int64("student_id", id))
		return err
	}
	return nil
}
