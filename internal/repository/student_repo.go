package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"student-score/backend/internal/model"
)

// UnknownStudentName 成绩关联的学生已不存在时显示的姓名
const UnknownStudentName = "未知学生"

// StudentFilter 学生列表筛选条件，空值表示不筛选
type StudentFilter struct {
	Grade string
	Major string
}

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context, filter StudentFilter) ([]model.Student, error)
	// Update 只写入 fields 中给出的列
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	// Delete 在同一事务内删除学生及其全部成绩
	Delete(ctx context.Context, id int64) error
	GetName(ctx context.Context, id int64) (string, error)
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Scores").Create(student).Error
	})
	return wrap("create student", err)
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, wrap("get student", err)
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, filter StudentFilter) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx)

	if filter.Grade != "" {
		db = db.Where("grade = ?", filter.Grade)
	}
	if filter.Major != "" {
		db = db.Where("major = ?", filter.Major)
	}

	err := db.Order("student_id ASC").Find(&students).Error
	return students, wrap("list students", err)
}

func (r *studentRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Student{}).
			Where("student_id = ?", id).
			Updates(fields).Error
	})
	return wrap("update student", err)
}

func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&model.Score{}).Error; err != nil {
			return err
		}
		return tx.Where("student_id = ?", id).Delete(&model.Student{}).Error
	})
	return wrap("delete student", err)
}

func (r *studentRepo) GetName(ctx context.Context, id int64) (string, error) {
	names, err := r.NamesByIDs(ctx, []int64{id})
	if err != nil {
		return "", err
	}
	if name, ok := names[id]; ok {
		return name, nil
	}
	return UnknownStudentName, nil
}

func (r *studentRepo) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		StudentID int64
		Name      string
	}
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Select("student_id, name").
		Where("student_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("student names", err)
	}

	for _, row := range rows {
		names[row.StudentID] = row.Name
	}
	return names, nil
}

// IsNotFound 判断是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
