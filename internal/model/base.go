package model

import "time"

// 对外展示与入参使用的时间格式
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ParseDate 按 YYYY-MM-DD 解析日期（本地时区零点）
// 使用本地时区，保证 MySQL loc=Local 写入 DATE 时不跨日
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
