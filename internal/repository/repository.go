package repository

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	pkgerrors "student-score/backend/pkg/errors"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User    UserRepository
	Student StudentRepository
	Score   ScoreRepository
	Report  ReportRepository
}

// NewRepository 创建 Repository 聚合
// 统计查询通过 sqlx 复用同一个连接池
func NewRepository(db *gorm.DB) (*Repository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	return &Repository{
		User:    NewUserRepo(db),
		Student: NewStudentRepo(db),
		Score:   NewScoreRepo(db),
		Report:  NewReportRepo(sqlx.NewDb(sqlDB, db.Dialector.Name())),
	}, nil
}

// wrap 将存储错误包装为 StoreError；记录不存在保持原样供上层判断
func wrap(op string, err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return pkgerrors.Wrap(op, err)
}
