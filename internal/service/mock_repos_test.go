package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"student-score/backend/internal/model"
	"student-score/backend/internal/repository"
	pkgerrors "student-score/backend/pkg/errors"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: username
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = int64(len(m.users) + 1)
	}
	m.users[user.Username] = user
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	nextID   int64
	scores   *mockScoreRepo // 删除学生时级联
	err      error          // 非 nil 时所有写操作返回该错误
}

func newMockStudentRepo(scores *mockScoreRepo) *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), scores: scores}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	student.StudentID = m.nextID
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, filter repository.StudentFilter) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if filter.Grade != "" && s.Grade != filter.Grade {
			continue
		}
		if filter.Major != "" && s.Major != filter.Major {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, id int64, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	s, ok := m.students[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			s.Name = v.(string)
		case "gender":
			s.Gender = v.(string)
		case "grade":
			s.Grade = v.(string)
		case "major":
			s.Major = v.(string)
		}
	}
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.students, id)
	if m.scores != nil {
		for sid, sc := range m.scores.scores {
			if sc.StudentID == id {
				delete(m.scores.scores, sid)
			}
		}
	}
	return nil
}

func (m *mockStudentRepo) GetName(ctx context.Context, id int64) (string, error) {
	if s, ok := m.students[id]; ok {
		return s.Name, nil
	}
	return repository.UnknownStudentName, nil
}

func (m *mockStudentRepo) NamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, id := range ids {
		if s, ok := m.students[id]; ok {
			names[id] = s.Name
		}
	}
	return names, nil
}

// ── Mock ScoreRepository ──

type mockScoreRepo struct {
	scores map[int64]*model.Score
	nextID int64
	err    error
}

func newMockScoreRepo() *mockScoreRepo {
	return &mockScoreRepo{scores: make(map[int64]*model.Score)}
}

func (m *mockScoreRepo) Create(_ context.Context, score *model.Score) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	score.ScoreID = m.nextID
	m.scores[score.ScoreID] = score
	return nil
}

func (m *mockScoreRepo) GetByID(_ context.Context, id int64) (*model.Score, error) {
	if s, ok := m.scores[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScoreRepo) List(_ context.Context, filter repository.ScoreFilter) ([]model.Score, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []model.Score
	for _, s := range m.scores {
		if filter.StudentID != nil && s.StudentID != *filter.StudentID {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScoreID < result[j].ScoreID })
	return result, nil
}

func (m *mockScoreRepo) Update(_ context.Context, id int64, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	s, ok := m.scores[id]
	if !ok {
		return nil
	}
	if v, ok := fields["course"]; ok {
		s.Course = v.(string)
	}
	if v, ok := fields["score"]; ok {
		s.Score = v.(int)
	}
	if v, ok := fields["exam_time"]; ok {
		s.ExamTime = v.(time.Time)
	}
	return nil
}

func (m *mockScoreRepo) Delete(_ context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.scores, id)
	return nil
}

func (m *mockScoreRepo) CountByStudentIDs(_ context.Context, ids []int64) (map[int64]int64, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	counts := make(map[int64]int64)
	for _, s := range m.scores {
		if want[s.StudentID] {
			counts[s.StudentID]++
		}
	}
	return counts, nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	stats []model.ScoreStat
	rates []model.CoursePassRate
	err   error
}

func (m *mockReportRepo) ScoreStatistics(_ context.Context) ([]model.ScoreStat, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func (m *mockReportRepo) CoursePassRate(_ context.Context) ([]model.CoursePassRate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rates, nil
}

// ── 测试辅助 ──

type mockRepos struct {
	user    *mockUserRepo
	student *mockStudentRepo
	score   *mockScoreRepo
	report  *mockReportRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	scores := newMockScoreRepo()
	m := &mockRepos{
		user:    newMockUserRepo(),
		student: newMockStudentRepo(scores),
		score:   scores,
		report:  &mockReportRepo{},
	}
	return &repository.Repository{
		User:    m.user,
		Student: m.student,
		Score:   m.score,
		Report:  m.report,
	}, m
}

// storeErr 模拟数据库失败
func storeErr(op, detail string) error {
	return pkgerrors.Wrap(op, errors.New(detail))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
