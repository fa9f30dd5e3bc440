package model

// ScoreStat 专业×课程 成绩统计行（只读视图）
type ScoreStat struct {
	Major        string  `db:"major"`
	Course       string  `db:"course"`
	AvgScore     float64 `db:"avg_score"`
	MaxScore     int     `db:"max_score"`
	MinScore     int     `db:"min_score"`
	StudentCount int64   `db:"student_count"`
}

// CoursePassRate 年级×课程 及格率统计行（只读视图）
type CoursePassRate struct {
	Grade         string  `db:"grade"`
	Course        string  `db:"course"`
	TotalStudents int64   `db:"total_students"`
	PassStudents  int64   `db:"pass_students"`
	PassRate      float64 `db:"pass_rate"`
}
