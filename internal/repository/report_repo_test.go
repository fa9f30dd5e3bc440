package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-score/backend/internal/model"
)

func TestReportRepo_Empty(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	stats, err := repo.Report.ScoreStatistics(ctx)
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)

	rates, err := repo.Report.CoursePassRate(ctx)
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestReportRepo_ScoreStatistics(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	a := seedStudent(t, repo, "A", "2024", "CS")
	b := seedStudent(t, repo, "B", "2024", "CS")
	m := seedStudent(t, repo, "M", "2023", "Math")
	seedScore(t, repo, a.StudentID, "英语", 70)
	seedScore(t, repo, b.StudentID, "英语", 75)
	seedScore(t, repo, a.StudentID, "数学", 90)
	seedScore(t, repo, b.StudentID, "数学", 81)
	seedScore(t, repo, a.StudentID, "数学", 80)
	seedScore(t, repo, m.StudentID, "数学", 60)
	// 无成绩的学生不参与内连接
	seedStudent(t, repo, "Z", "2022", "Art")

	stats, err := repo.Report.ScoreStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	// 专业升序，同专业平均分降序
	assert.Equal(t, "CS", stats[0].Major)
	assert.Equal(t, "数学", stats[0].Course)
	assert.InDelta(t, 83.67, stats[0].AvgScore, 0.001, "平均分保留两位小数")
	assert.Equal(t, 90, stats[0].MaxScore)
	assert.Equal(t, 80, stats[0].MinScore)
	assert.Equal(t, int64(3), stats[0].StudentCount)

	assert.Equal(t, "CS", stats[1].Major)
	assert.Equal(t, "英语", stats[1].Course)
	assert.InDelta(t, 72.5, stats[1].AvgScore, 0.001)

	assert.Equal(t, "Math", stats[2].Major)
	assert.Equal(t, int64(1), stats[2].StudentCount)
}

func TestReportRepo_CoursePassRate(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	s := seedStudent(t, repo, "A", "2024", "CS")
	seedScore(t, repo, s.StudentID, "数学", 50)
	seedScore(t, repo, s.StudentID, "数学", 90)
	seedScore(t, repo, s.StudentID, "英语", 60)
	seedScore(t, repo, s.StudentID, "物理", 10)
	seedScore(t, repo, s.StudentID, "物理", 61)
	seedScore(t, repo, s.StudentID, "物理", 20)

	old := seedStudent(t, repo, "B", "2023", "CS")
	seedScore(t, repo, old.StudentID, "数学", 100)

	rates, err := repo.Report.CoursePassRate(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 4)

	// 年级升序
	assert.Equal(t, "2023", rates[0].Grade)
	assert.InDelta(t, 100.0, rates[0].PassRate, 0.001)

	// 2024 级按及格率降序：英语 100 > 数学 50 > 物理 33.33
	assert.Equal(t, "英语", rates[1].Course)
	assert.InDelta(t, 100.0, rates[1].PassRate, 0.001)

	assert.Equal(t, "数学", rates[2].Course)
	assert.Equal(t, int64(2), rates[2].TotalStudents)
	assert.Equal(t, int64(1), rates[2].PassStudents)
	assert.InDelta(t, 50.0, rates[2].PassRate, 0.001)

	assert.Equal(t, "物理", rates[3].Course)
	assert.Equal(t, int64(3), rates[3].TotalStudents)
	assert.Equal(t, int64(1), rates[3].PassStudents)
	assert.InDelta(t, 33.33, rates[3].PassRate, 0.001)
}

func TestReportRepo_CoursePassRate_PassLine(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	s := seedStudent(t, repo, "A", "2024", "CS")
	seedScore(t, repo, s.StudentID, "化学", model.PassScore)
	seedScore(t, repo, s.StudentID, "化学", model.PassScore-1)

	rates, err := repo.Report.CoursePassRate(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, int64(2), rates[0].TotalStudents)
	assert.Equal(t, int64(1), rates[0].PassStudents, "等于及格线计为及格")
	assert.InDelta(t, 50.0, rates[0].PassRate, 0.001)
}
