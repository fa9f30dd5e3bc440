package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult 登录结果，Token 经 Cookie 下发，不出现在响应体中
type LoginResult struct {
	Token string `json:"-"`
	Role  string `json:"role"`
}
