package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"student-score/backend/internal/dto"
)

func setupTestExportService() (ExportService, ScoreService, int64) {
	scoreSvc, _, sid := setupTestScoreService()
	return NewExportService(scoreSvc, zap.NewNop()), scoreSvc, sid
}

func TestExportService_ExportScores_Success(t *testing.T) {
	svc, scoreSvc, sid := setupTestExportService()
	ctx := context.Background()

	_, _ = scoreSvc.Create(ctx, newScoreReq(sid, "数学", 90, "2024-01-15"))
	_, _ = scoreSvc.Create(ctx, newScoreReq(sid, "英语", 55, "2024-01-16"))

	buf, filename, err := svc.ExportScores(ctx, &dto.ScoreListRequest{})
	if err != nil {
		t.Fatalf("ExportScores 应成功: %v", err)
	}
	if filename != "成绩表.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}
	// Excel .xlsx 文件以 PK (0x504B) 开头
	if buf.Len() < 2 || buf.Bytes()[0] != 0x50 || buf.Bytes()[1] != 0x4B {
		t.Fatal("输出内容不是有效的 xlsx 文件格式（应以 PK 开头）")
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("无法读取导出文件: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("成绩表")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望表头 + 2 行，实际 %d 行", len(rows))
	}
	if rows[0][2] != "姓名" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][2] != "张三" || rows[1][3] != "数学" || rows[1][4] != "90" || rows[1][5] != "2024-01-15" {
		t.Errorf("数据行不符: %v", rows[1])
	}
}

func TestExportService_ExportScores_FilteredEmpty(t *testing.T) {
	svc, _, _ := setupTestExportService()

	missing := int64(404)
	buf, filename, err := svc.ExportScores(context.Background(), &dto.ScoreListRequest{StudentID: &missing})
	if err != nil {
		t.Fatalf("无数据时也应导出: %v", err)
	}
	if filename != "成绩表_404.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}
	if buf.Len() == 0 {
		t.Error("导出的 Excel buffer 不应为空")
	}
}
