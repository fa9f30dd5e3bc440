package dto

// ── 统计查询 DTO ──

// ScoreStatResponse 各专业课程成绩统计
type ScoreStatResponse struct {
	Major        string  `json:"major"`
	Course       string  `json:"course"`
	AvgScore     float64 `json:"avg_score"`
	MaxScore     int     `json:"max_score"`
	MinScore     int     `json:"min_score"`
	StudentCount int64   `json:"student_count"`
}

// PassRateResponse 按年级统计的课程及格率（百分比）
type PassRateResponse struct {
	Grade         string  `json:"grade"`
	Course        string  `json:"course"`
	TotalStudents int64   `json:"total_students"`
	PassStudents  int64   `json:"pass_students"`
	PassRate      float64 `json:"pass_rate"`
}
