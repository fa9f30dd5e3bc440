package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"student-score/backend/internal/model"
)

// setupTestDB 创建内存 SQLite 并建表
func setupTestDB(t *testing.T) (*gorm.DB, *Repository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "打开 SQLite 失败")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库每个连接独立，限制为单连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Student{}, &model.Score{}))

	repo, err := NewRepository(db)
	require.NoError(t, err)
	return db, repo
}

func seedStudent(t *testing.T, repo *Repository, name, grade, major string) *model.Student {
	t.Helper()
	s := &model.Student{Name: name, Gender: "F", Grade: grade, Major: major}
	require.NoError(t, repo.Student.Create(context.Background(), s))
	return s
}

func seedScore(t *testing.T, repo *Repository, studentID int64, course string, score int) *model.Score {
	t.Helper()
	sc := &model.Score{
		StudentID: studentID,
		Course:    course,
		Score:     score,
		ExamTime:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local),
	}
	require.NoError(t, repo.Score.Create(context.Background(), sc))
	return sc
}
