package model

import "time"

// PassScore 及格线，成绩不低于该值计为及格
const PassScore = 60

// Score 成绩表，对应 scores
type Score struct {
	ScoreID   int64     `gorm:"primaryKey;autoIncrement"  json:"score_id"`
	StudentID int64     `gorm:"not null;index"            json:"student_id"`
	Course    string    `gorm:"type:varchar(50);not null" json:"course"`
	Score     int       `gorm:"not null"                  json:"score"`
	ExamTime  time.Time `gorm:"type:date;not null"        json:"exam_time"`
}

// TableName 指定表名
func (Score) TableName() string { return "scores" }
