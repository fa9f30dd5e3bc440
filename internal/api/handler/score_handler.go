package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/service"
	"student-score/backend/pkg/response"
)

// ScoreHandler 成绩模块 HTTP 处理器
type ScoreHandler struct {
	scoreSvc service.ScoreService
}

// NewScoreHandler 创建 ScoreHandler
func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// CreateScore 添加成绩
// POST /api/scores
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	var req dto.CreateScoreRequest
	if !BindJSON(c, &req) {
		return
	}

	id, err := h.scoreSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleScoreError(c, err, "添加失败：")
		return
	}

	response.Success(c, "成绩添加成功", id)
}

// ListScores 查询成绩列表，可按学生筛选
// GET /api/scores?student_id=
func (h *ScoreHandler) ListScores(c *gin.Context) {
	studentID, ok := ParseStudentIDQuery(c)
	if !ok {
		return
	}

	scores, err := h.scoreSvc.List(c.Request.Context(), &dto.ScoreListRequest{StudentID: studentID})
	if err != nil {
		h.handleScoreError(c, err, "查询失败：")
		return
	}

	response.OK(c, scores)
}

// UpdateScore 更新成绩（部分字段）
// PUT /api/scores/:id
func (h *ScoreHandler) UpdateScore(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, service.ErrScoreNotFound.Error())
		return
	}

	var req dto.UpdateScoreRequest
	if !BindJSON(c, &req) {
		return
	}

	if err := h.scoreSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleScoreError(c, err, "更新失败：")
		return
	}

	response.Success(c, "成绩更新成功", nil)
}

// DeleteScore 删除成绩
// DELETE /api/scores/:id
func (h *ScoreHandler) DeleteScore(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, service.ErrScoreNotFound.Error())
		return
	}

	if err := h.scoreSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleScoreError(c, err, "删除失败：")
		return
	}

	response.Success(c, "成绩删除成功", nil)
}

func (h *ScoreHandler) handleScoreError(c *gin.Context, err error, failPrefix string) {
	if writeValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrScoreNotFound),
		errors.Is(err, service.ErrScoreStudentNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, failPrefix+err.Error())
	}
}
