package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"student-score/backend/internal/model"
)

// 各专业课程成绩统计：学生 ⋈ 成绩，按 (专业, 课程) 分组
const scoreStatisticsSQL = `
SELECT s.major AS major, c.course AS course,
       ROUND(AVG(c.score), 2) AS avg_score,
       MAX(c.score)           AS max_score,
       MIN(c.score)           AS min_score,
       COUNT(c.score)         AS student_count
FROM students s
INNER JOIN scores c ON s.student_id = c.student_id
GROUP BY s.major, c.course
ORDER BY s.major ASC, avg_score DESC`

// 按年级统计各课程及格率，两个占位符均为及格线
// 乘 100.0 保证各数据库均为小数除法
const coursePassRateSQL = `
SELECT s.grade AS grade, c.course AS course,
       COUNT(c.score) AS total_students,
       SUM(CASE WHEN c.score >= ? THEN 1 ELSE 0 END) AS pass_students,
       ROUND(SUM(CASE WHEN c.score >= ? THEN 1 ELSE 0 END) * 100.0 / COUNT(c.score), 2) AS pass_rate
FROM students s
INNER JOIN scores c ON s.student_id = c.student_id
GROUP BY s.grade, c.course
ORDER BY s.grade ASC, pass_rate DESC`

// ReportRepository 统计查询接口（只读）
type ReportRepository interface {
	ScoreStatistics(ctx context.Context) ([]model.ScoreStat, error)
	CoursePassRate(ctx context.Context) ([]model.CoursePassRate, error)
}

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *sqlx.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) ScoreStatistics(ctx context.Context) ([]model.ScoreStat, error) {
	stats := []model.ScoreStat{}
	if err := r.db.SelectContext(ctx, &stats, scoreStatisticsSQL); err != nil {
		return nil, wrap("score statistics", err)
	}
	return stats, nil
}

func (r *reportRepo) CoursePassRate(ctx context.Context) ([]model.CoursePassRate, error) {
	rates := []model.CoursePassRate{}
	query := r.db.Rebind(coursePassRateSQL)
	if err := r.db.SelectContext(ctx, &rates, query, model.PassScore, model.PassScore); err != nil {
		return nil, wrap("course pass rate", err)
	}
	return rates, nil
}
