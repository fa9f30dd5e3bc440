// Package validate 在任何写操作之前对请求载荷做字段存在性、取值范围与日期格式校验。
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"student-score/backend/internal/dto"
)

// Kind 校验失败类别
type Kind int

const (
	MissingField Kind = iota + 1
	OutOfRange
	BadDateFormat
	Invalid
)

// Error 校验失败，统一映射为 400
type Error struct {
	Kind  Kind
	Field string
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingField:
		return "缺少必填参数：" + e.Field
	case OutOfRange:
		return "成绩必须在0-100之间"
	case BadDateFormat:
		return "日期格式错误，需为YYYY-MM-DD"
	default:
		return "参数校验失败：" + e.Field
	}
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// 错误中的字段名使用 JSON 名称
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return val
}

// StudentCreate 校验创建学生载荷：四个字段必须提供，允许空字符串
func StudentCreate(req *dto.CreateStudentRequest) error {
	return check(req)
}

// ScoreCreateRequired 只检查添加成绩载荷的必填字段，
// 按 student_id, course, score, exam_time 顺序报告第一个缺失字段
func ScoreCreateRequired(req *dto.CreateScoreRequest) error {
	err := check(req)
	var ve *Error
	if errors.As(err, &ve) && ve.Kind != MissingField {
		return nil
	}
	return err
}

// ScoreCreate 校验添加成绩载荷：缺失字段优先，其次成绩范围与日期格式
func ScoreCreate(req *dto.CreateScoreRequest) error {
	return check(req)
}

// ScoreUpdate 校验更新成绩载荷：提供的字段才检查，任一失败则整体放弃更新
func ScoreUpdate(req *dto.UpdateScoreRequest) error {
	return check(req)
}

func check(payload interface{}) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("校验器调用失败: %w", err)
	}

	// 缺失字段优先于其他错误
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return &Error{Kind: MissingField, Field: fe.Field()}
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "min", "max":
		return &Error{Kind: OutOfRange, Field: fe.Field()}
	case "datetime":
		return &Error{Kind: BadDateFormat, Field: fe.Field()}
	default:
		return &Error{Kind: Invalid, Field: fe.Field()}
	}
}
