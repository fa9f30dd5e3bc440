package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"student-score/backend/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

const issuer = "student-score"

// Claims 会话令牌声明：jti 即服务端会话 ID，令牌本身不携带用户信息
type Claims struct {
	jwtv5.RegisteredClaims
}

// SessionID 返回令牌绑定的会话 ID
func (c *Claims) SessionID() string { return c.ID }

// Manager 会话令牌签名器
type Manager struct {
	secret      []byte
	maxLifetime time.Duration
}

// NewManager 创建签名器
func NewManager(cfg *config.SessionConfig) *Manager {
	return &Manager{
		secret:      []byte(cfg.Secret),
		maxLifetime: cfg.MaxLifetime,
	}
}

// Sign 为会话 ID 签发 HS256 令牌
// maxLifetime 为 0 时不设置 exp，仅依赖服务端会话过期
func (m *Manager) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:       sessionID,
			IssuedAt: jwtv5.NewNumericDate(now),
			Issuer:   issuer,
		},
	}
	if m.maxLifetime > 0 {
		claims.ExpiresAt = jwtv5.NewNumericDate(now.Add(m.maxLifetime))
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse 校验签名与有效期并返回声明
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
