package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"student-score/backend/config"
	"student-score/backend/internal/dto"
	"student-score/backend/internal/service"
	"student-score/backend/pkg/response"
	"student-score/backend/pkg/session"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
	cookie  config.CookieConfig
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cookie: cookie}
}

// Login 用户登录
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrUsernameNotFound),
			errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		default:
			response.InternalError(c, "登录失败："+err.Error())
		}
		return
	}

	h.setCookie(c, result.Token, 0)
	response.Success(c, "登录成功", result)
}

// Logout 用户登出，无会话时同样成功
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authSvc.Logout(c.Request.Context(), session.TokenFromRequest(c.Request, h.cookie.Name))
	h.setCookie(c, "", -1)
	response.Success(c, "登出成功", nil)
}

// setCookie maxAge=0 为浏览器会话 Cookie，<0 删除
func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
