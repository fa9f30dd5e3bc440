package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"student-score/backend/config"
	"student-score/backend/internal/dto"
	"student-score/backend/internal/model"
	"student-score/backend/pkg/jwt"
	"student-score/backend/pkg/session"
)

func setupTestAuthService(t *testing.T) (AuthService, *mockRepos) {
	t.Helper()
	repo, mocks := newMockRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	_ = mocks.user.Create(context.Background(), &model.User{
		Username: "teacher1",
		Password: string(hash),
		Role:     model.RoleTeacher,
	})

	signer := jwt.NewManager(&config.SessionConfig{
		Secret:      "test-secret-key-for-unit-testing",
		MaxLifetime: time.Hour,
	})
	sessMgr := session.NewManager(session.NewMemoryStore(), signer, time.Hour)

	return NewAuthService(repo, sessMgr, zap.NewNop()), mocks
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Username: "teacher1", Password: "correct-password"})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}
	if res.Role != model.RoleTeacher {
		t.Errorf("期望角色 teacher，实际 %s", res.Role)
	}
	if res.Token == "" {
		t.Fatal("令牌不应为空")
	}

	p, err := svc.Authorize(ctx, res.Token)
	if err != nil {
		t.Fatalf("新会话应可鉴权: %v", err)
	}
	if p.Username != "teacher1" || p.UserID != 1 {
		t.Errorf("会话身份不符: %+v", p)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "teacher1", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "x"})
	if !errors.Is(err, ErrUsernameNotFound) {
		t.Errorf("期望 ErrUsernameNotFound，实际: %v", err)
	}
	if ErrUsernameNotFound.Error() == ErrInvalidCredentials.Error() {
		t.Error("用户名不存在与密码错误的提示应可区分")
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	cases := []dto.LoginRequest{
		{Username: "", Password: "x"},
		{Username: "teacher1", Password: ""},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), &req)
		if !errors.Is(err, ErrEmptyCredentials) {
			t.Errorf("req=%+v 期望 ErrEmptyCredentials，实际: %v", req, err)
		}
	}
}

func TestAuthService_Login_StoreError(t *testing.T) {
	svc, mocks := setupTestAuthService(t)
	mocks.user.err = storeErr("get user", "connection refused")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "teacher1", Password: "correct-password"})
	if err == nil || errors.Is(err, ErrUsernameNotFound) {
		t.Errorf("存储失败不应被当作用户不存在: %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _ := setupTestAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, &dto.LoginRequest{Username: "teacher1", Password: "correct-password"})
	if err != nil {
		t.Fatal(err)
	}

	svc.Logout(ctx, res.Token)
	if _, err := svc.Authorize(ctx, res.Token); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Errorf("登出后期望 ErrNotAuthenticated，实际: %v", err)
	}

	// 重复登出、空令牌均为空操作
	svc.Logout(ctx, res.Token)
	svc.Logout(ctx, "")
}
