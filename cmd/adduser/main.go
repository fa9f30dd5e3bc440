// adduser 离线创建登录用户（HTTP 服务不提供注册接口）。
//
//	SCORE_SESSION_SECRET=... go run ./cmd/adduser -username teacher1 -password '******'
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"student-score/backend/config"
	"student-score/backend/internal/model"
	"student-score/backend/internal/repository"
	"student-score/backend/pkg/database"
	applogger "student-score/backend/pkg/logger"
)

func main() {
	username := flag.String("username", "", "登录用户名")
	password := flag.String("password", "", "登录密码（明文，写库前做 bcrypt 哈希）")
	role := flag.String("role", model.RoleTeacher, "用户角色")
	configPath := flag.String("config", os.Getenv("SCORE_CONFIG"), "配置文件路径")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "用户名和密码不能为空")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("密码哈希失败", zap.Error(err))
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		logger.Fatal("初始化 Repository 失败", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := &model.User{Username: *username, Password: string(hash), Role: *role}
	if err := repo.User.Create(ctx, user); err != nil {
		logger.Fatal("创建用户失败", zap.String("username", *username), zap.Error(err))
	}

	logger.Info("用户已创建", zap.String("username", user.Username), zap.Int64("id", user.ID), zap.String("role", user.Role))
}
