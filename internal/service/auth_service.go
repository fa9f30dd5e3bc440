package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"student-score/backend/internal/dto"
	"student-score/backend/internal/metrics"
	"student-score/backend/internal/repository"
	"student-score/backend/pkg/session"
)

var (
	ErrEmptyCredentials   = errors.New("用户名和密码不能为空")
	ErrUsernameNotFound   = errors.New("用户名不存在")
	ErrInvalidCredentials = errors.New("密码错误")
)

// AuthService 认证业务接口
type AuthService interface {
	// Authenticate 校验用户名与密码，成功返回会话身份
	Authenticate(ctx context.Context, username, password string) (*session.Principal, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error)
	// Logout 销毁会话，会话不存在或存储失败均视为已登出
	Logout(ctx context.Context, token string)
	Authorize(ctx context.Context, token string) (*session.Principal, error)
}

type authService struct {
	repo    *repository.Repository
	sessMgr *session.Manager
	logger  *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	sessMgr *session.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		sessMgr: sessMgr,
		logger:  logger,
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*session.Principal, error) {
	// 1. 查询用户（精确匹配）
	user, err := s.repo.User.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginUnknownUser).Inc()
			return nil, ErrUsernameNotFound
		}
		logStoreError(s.logger, "查询用户失败", err, zap.String("username", username))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginBadPassword).Inc()
		return nil, ErrInvalidCredentials
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	return &session.Principal{
		Username: user.Username,
		Role:     user.Role,
		UserID:   user.ID,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	if req.Username == "" || req.Password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginRejectedEmpty).Inc()
		return nil, ErrEmptyCredentials
	}

	p, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.sessMgr.Issue(ctx, *p)
	if err != nil {
		s.logger.Error("创建会话失败", zap.String("username", p.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户登录", zap.String("username", p.Username), zap.Int64("user_id", p.UserID))
	return &dto.LoginResult{Token: token, Role: p.Role}, nil
}

func (s *authService) Logout(ctx context.Context, token string) {
	if err := s.sessMgr.Destroy(ctx, token); err != nil {
		s.logger.Warn("销毁会话失败", zap.Error(err))
	}
}

func (s *authService) Authorize(ctx context.Context, token string) (*session.Principal, error) {
	return s.sessMgr.Authorize(ctx, token)
}
