package repository

import (
	"context"

	"gorm.io/gorm"

	"student-score/backend/internal/model"
)

// ScoreFilter 成绩列表筛选条件
type ScoreFilter struct {
	StudentID *int64
}

// ScoreRepository 成绩数据访问接口
type ScoreRepository interface {
	Create(ctx context.Context, score *model.Score) error
	GetByID(ctx context.Context, id int64) (*model.Score, error)
	List(ctx context.Context, filter ScoreFilter) ([]model.Score, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	// CountByStudentIDs 一次查询返回每个学生的成绩条数，无成绩的学生不在结果中
	CountByStudentIDs(ctx context.Context, ids []int64) (map[int64]int64, error)
}

type scoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo 创建 ScoreRepository 实例
func NewScoreRepo(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) Create(ctx context.Context, score *model.Score) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(score).Error
	})
	return wrap("create score", err)
}

func (r *scoreRepo) GetByID(ctx context.Context, id int64) (*model.Score, error) {
	var score model.Score
	err := r.db.WithContext(ctx).
		Where("score_id = ?", id).
		First(&score).Error
	if err != nil {
		return nil, wrap("get score", err)
	}
	return &score, nil
}

func (r *scoreRepo) List(ctx context.Context, filter ScoreFilter) ([]model.Score, error) {
	var scores []model.Score
	db := r.db.WithContext(ctx)

	if filter.StudentID != nil {
		db = db.Where("student_id = ?", *filter.StudentID)
	}

	err := db.Order("score_id ASC").Find(&scores).Error
	return scores, wrap("list scores", err)
}

func (r *scoreRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Score{}).
			Where("score_id = ?", id).
			Updates(fields).Error
	})
	return wrap("update score", err)
}

func (r *scoreRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("score_id = ?", id).Delete(&model.Score{}).Error
	})
	return wrap("delete score", err)
}

func (r *scoreRepo) CountByStudentIDs(ctx context.Context, ids []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		StudentID int64
		Total     int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Score{}).
		Select("student_id, COUNT(*) AS total").
		Where("student_id IN ?", ids).
		Group("student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("count scores", err)
	}

	for _, row := range rows {
		counts[row.StudentID] = row.Total
	}
	return counts, nil
}
