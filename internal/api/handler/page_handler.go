package handler

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-score/backend/internal/service"
	"student-score/backend/pkg/session"
)

// PageHandler 前端页面入口
type PageHandler struct {
	authSvc     service.AuthService
	cookieName  string
	frontendDir string
	logger      *zap.Logger
}

// NewPageHandler 创建 PageHandler
func NewPageHandler(authSvc service.AuthService, cookieName, frontendDir string, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		authSvc:     authSvc,
		cookieName:  cookieName,
		frontendDir: frontendDir,
		logger:      logger,
	}
}

// Index 主页，未登录跳转登录页
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	if !h.loggedIn(c) {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.File(filepath.Join(h.frontendDir, "index.html"))
}

// LoginPage 登录页，已登录跳转主页
// GET /login
func (h *PageHandler) LoginPage(c *gin.Context) {
	if h.loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.File(filepath.Join(h.frontendDir, "login.html"))
}

func (h *PageHandler) loggedIn(c *gin.Context) bool {
	token := session.TokenFromRequest(c.Request, h.cookieName)
	if token == "" {
		return false
	}
	_, err := h.authSvc.Authorize(c.Request.Context(), token)
	if err != nil && !errors.Is(err, session.ErrNotAuthenticated) {
		h.logger.Warn("页面会话校验失败", zap.Error(err))
	}
	return err == nil
}
