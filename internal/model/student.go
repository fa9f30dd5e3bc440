package model

import "time"

// Student 学生表，对应 students
type Student struct {
	StudentID  int64     `gorm:"primaryKey;autoIncrement"      json:"student_id"`
	Name       string    `gorm:"type:varchar(50);not null"     json:"name"`
	Gender     string    `gorm:"type:varchar(10);not null"     json:"gender"`
	Grade      string    `gorm:"type:varchar(20);not null"     json:"grade"`
	Major      string    `gorm:"type:varchar(50);not null"     json:"major"`
	CreateTime time.Time `gorm:"autoCreateTime;<-:create"      json:"create_time"`

	// 关联（删除学生时级联删除成绩）
	Scores []Score `gorm:"foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
