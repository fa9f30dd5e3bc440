package dto

// ── 成绩模块 DTO ──

// CreateScoreRequest 添加成绩请求
// 字段顺序即缺失字段的报告顺序
type CreateScoreRequest struct {
	StudentID *int64  `json:"student_id" validate:"required"`
	Course    *string `json:"course"     validate:"required"`
	Score     *int    `json:"score"      validate:"required,min=0,max=100"`
	ExamTime  *string `json:"exam_time"  validate:"required,datetime=2006-01-02"`
}

// UpdateScoreRequest 更新成绩请求（字段均可选）
type UpdateScoreRequest struct {
	Course   *string `json:"course"`
	Score    *int    `json:"score"     validate:"omitempty,min=0,max=100"`
	ExamTime *string `json:"exam_time" validate:"omitempty,datetime=2006-01-02"`
}

// ScoreListRequest 成绩列表筛选参数
type ScoreListRequest struct {
	StudentID *int64 `form:"student_id"`
}

// ScoreResponse 成绩信息响应（含学生姓名）
type ScoreResponse struct {
	ScoreID     int64  `json:"score_id"`
	StudentID   int64  `json:"student_id"`
	StudentName string `json:"student_name"`
	Course      string `json:"course"`
	Score       int    `json:"score"`
	ExamTime    string `json:"exam_time"`
}
