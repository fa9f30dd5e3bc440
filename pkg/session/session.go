// Package session 管理登录会话：服务端保存 {username, role, user_id}，
// 客户端仅持有签名后的不透明令牌。会话在空闲超时后失效，每次鉴权顺延。
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"student-score/backend/pkg/jwt"
)

// ErrNotAuthenticated 令牌缺失、无效，或会话已失效
var ErrNotAuthenticated = errors.New("请先登录")

// Principal 会话绑定的登录身份
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   int64  `json:"user_id"`
}

// Store 会话存储后端
type Store interface {
	Save(ctx context.Context, id string, data []byte, ttl time.Duration) error
	// Load 读取并顺延 TTL；不存在时 found=false
	Load(ctx context.Context, id string, ttl time.Duration) (data []byte, found bool, err error)
	Delete(ctx context.Context, id string) error
}

// Manager 会话管理器
type Manager struct {
	store       Store
	signer      *jwt.Manager
	idleTimeout time.Duration
}

// NewManager 创建会话管理器
func NewManager(store Store, signer *jwt.Manager, idleTimeout time.Duration) *Manager {
	return &Manager{store: store, signer: signer, idleTimeout: idleTimeout}
}

// Issue 为身份创建新会话并返回签名令牌
func (m *Manager) Issue(ctx context.Context, p Principal) (string, error) {
	id := uuid.NewString()

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("序列化会话失败: %w", err)
	}
	if err := m.store.Save(ctx, id, data, m.idleTimeout); err != nil {
		return "", fmt.Errorf("保存会话失败: %w", err)
	}

	token, err := m.signer.Sign(id)
	if err != nil {
		_ = m.store.Delete(ctx, id)
		return "", fmt.Errorf("签发会话令牌失败: %w", err)
	}
	return token, nil
}

// Authorize 校验令牌并返回会话身份，同时顺延空闲超时
func (m *Manager) Authorize(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	claims, err := m.signer.Parse(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	data, found, err := m.store.Load(ctx, claims.SessionID(), m.idleTimeout)
	if err != nil {
		return nil, fmt.Errorf("读取会话失败: %w", err)
	}
	if !found {
		return nil, ErrNotAuthenticated
	}

	var p Principal
	if err := json.Unmarshal(data, &p); err != nil || p.Username == "" {
		return nil, ErrNotAuthenticated
	}
	return &p, nil
}

// Destroy 使会话失效；令牌无效或会话不存在时静默返回
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := m.signer.Parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.SessionID())
}

// TokenFromRequest 依次从 Cookie 与 Authorization: Bearer 头中取会话令牌
func TokenFromRequest(r *http.Request, cookieName string) string {
	if ck, err := r.Cookie(cookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
