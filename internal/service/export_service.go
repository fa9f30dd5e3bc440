package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"student-score/backend/internal/dto"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出内容与 GET /api/scores 相同（同一筛选条件、同一列）
//   - 以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportScores 导出成绩列表为 Excel
	ExportScores(ctx context.Context, req *dto.ScoreListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	scores ScoreService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(scores ScoreService, logger *zap.Logger) ExportService {
	return &exportService{scores: scores, logger: logger}
}

// 表头顺序即列顺序
var scoreSheetHeaders = []string{"成绩ID", "学号", "姓名", "课程", "成绩", "考试日期"}

// ═══════════════════════════════════════════════════════════
// ExportScores 导出成绩表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单个 Sheet "成绩表"
//   - 第 1 行表头，之后每行一条成绩，按 score_id 升序
//   - 无成绩时仅输出表头
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportScores(ctx context.Context, req *dto.ScoreListRequest) (*bytes.Buffer, string, error) {
	// 1. 查询成绩（含学生姓名）
	rows, err := s.scores.List(ctx, req)
	if err != nil {
		return nil, "", err
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成绩表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "B", 10)
	f.SetColWidth(sheetName, "C", "D", 16)
	f.SetColWidth(sheetName, "E", "E", 8)
	f.SetColWidth(sheetName, "F", "F", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range scoreSheetHeaders {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(scoreSheetHeaders)-1), 1), headerStyle)

	// 数据行
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, cell("A", row), r.ScoreID)
		f.SetCellValue(sheetName, cell("B", row), r.StudentID)
		f.SetCellValue(sheetName, cell("C", row), r.StudentName)
		f.SetCellValue(sheetName, cell("D", row), r.Course)
		f.SetCellValue(sheetName, cell("E", row), r.Score)
		f.SetCellValue(sheetName, cell("F", row), r.ExamTime)
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "成绩表.xlsx"
	if req.StudentID != nil {
		filename = fmt.Sprintf("成绩表_%d.xlsx", *req.StudentID)
	}
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
