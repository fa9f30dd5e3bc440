package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"student-score/backend/internal/validate"
	"student-score/backend/pkg/response"
)

// 请求体无法解析时的提示
const msgBadPayload = "请求参数格式错误"

// ParseID 解析路径参数 :id，必须为正整数。
// 解析失败时不写响应，由调用方按实体返回 404。
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// BindJSON 解析 JSON 请求体，失败时写入 400 响应。
// 调用方应在 ok=false 时直接 return。
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.BadRequest(c, msgBadPayload)
		return false
	}
	return true
}

// ParseStudentIDQuery 解析可选的 ?student_id 查询参数，空值表示不筛选。
// 非整数时写入 400 响应并返回 ok=false。
func ParseStudentIDQuery(c *gin.Context) (*int64, bool) {
	raw := c.Query("student_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "student_id 必须为整数")
		return nil, false
	}
	return &id, true
}

// writeValidationError 校验错误写入 400，返回是否已处理
func writeValidationError(c *gin.Context, err error) bool {
	var ve *validate.Error
	if errors.As(err, &ve) {
		response.Error(c, http.StatusBadRequest, ve.Error())
		return true
	}
	return false
}
