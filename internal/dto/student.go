package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生请求
// 指针字段区分"未提供"与空字符串，空字符串是合法值
type CreateStudentRequest struct {
	Name   *string `json:"name"   validate:"required"`
	Gender *string `json:"gender" validate:"required"`
	Grade  *string `json:"grade"  validate:"required"`
	Major  *string `json:"major"  validate:"required"`
}

// UpdateStudentRequest 更新学生请求（未提供的字段保持原值）
type UpdateStudentRequest struct {
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
	Grade  *string `json:"grade"`
	Major  *string `json:"major"`
}

// StudentListRequest 学生列表筛选参数
type StudentListRequest struct {
	Grade string `form:"grade"`
	Major string `form:"major"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	StudentID  int64  `json:"student_id"`
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Grade      string `json:"grade"`
	Major      string `json:"major"`
	CreateTime string `json:"create_time"`
	ScoreCount int64  `json:"score_count"`
}
