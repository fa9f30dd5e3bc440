package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/service"
	"student-score/backend/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// CreateStudent 创建学生
// POST /api/students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !BindJSON(c, &req) {
		return
	}

	id, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err, "添加失败：")
		return
	}

	response.Success(c, "学生添加成功", id)
}

// ListStudents 查询学生列表，可按年级、专业筛选
// GET /api/students
func (h *StudentHandler) ListStudents(c *gin.Context) {
	req := dto.StudentListRequest{
		Grade: c.Query("grade"),
		Major: c.Query("major"),
	}

	students, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleStudentError(c, err, "查询失败：")
		return
	}

	response.OK(c, students)
}

// UpdateStudent 更新学生信息（部分字段）
// PUT /api/students/:id
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, service.ErrStudentNotFound.Error())
		return
	}

	var req dto.UpdateStudentRequest
	if !BindJSON(c, &req) {
		return
	}

	if err := h.studentSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleStudentError(c, err, "更新失败：")
		return
	}

	response.Success(c, "更新成功", nil)
}

// DeleteStudent 删除学生及其全部成绩
// DELETE /api/students/:id
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := ParseID(c)
	if !ok {
		response.NotFound(c, service.ErrStudentNotFound.Error())
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleStudentError(c, err, "删除失败：")
		return
	}

	response.Success(c, "删除成功", nil)
}

func (h *StudentHandler) handleStudentError(c *gin.Context, err error, failPrefix string) {
	if writeValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, failPrefix+err.Error())
	}
}
