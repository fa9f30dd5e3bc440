package model

// 默认角色
const RoleTeacher = "teacher"

// User 系统用户表，对应 users
// 由 cmd/adduser 离线创建，HTTP 服务只读
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"                     json:"id"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null"        json:"username"`
	Password string `gorm:"type:varchar(100);not null"                   json:"-"` // bcrypt 哈希
	Role     string `gorm:"type:varchar(20);not null;default:'teacher'"  json:"role"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
