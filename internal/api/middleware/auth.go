package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"student-score/backend/pkg/response"
	"student-score/backend/pkg/session"
)

// 上下文键
const (
	ContextUsername = "username"
	ContextRole     = "role"
	ContextUserID   = "user_id"
)

// Authorizer 根据令牌返回会话身份
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*session.Principal, error)
}

// SessionAuth 会话认证中间件
// 从 Cookie 或 Authorization: Bearer 中取令牌，未登录时以 403 中止，handler 不会执行
func SessionAuth(authz Authorizer, cookieName string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := session.TokenFromRequest(c.Request, cookieName)

		p, err := authz.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotAuthenticated) {
				response.Forbidden(c, session.ErrNotAuthenticated.Error())
				c.Abort()
				return
			}
			logger.Error("会话校验失败", zap.Error(err))
			response.InternalError(c, "会话服务暂不可用")
			c.Abort()
			return
		}

		// 将会话身份注入上下文
		c.Set(ContextUsername, p.Username)
		c.Set(ContextRole, p.Role)
		c.Set(ContextUserID, p.UserID)

		c.Next()
	}
}
