package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"student-score/backend/config"
	"student-score/backend/pkg/jwt"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func setupManager(idle time.Duration) (*Manager, *MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	store.now = clock.now
	signer := jwt.NewManager(&config.SessionConfig{
		Secret:      "test-secret-key-for-unit-testing-2026",
		MaxLifetime: 24 * time.Hour,
	})
	return NewManager(store, signer, idle), store, clock
}

func TestManager_IssueAndAuthorize(t *testing.T) {
	mgr, _, _ := setupManager(time.Hour)
	ctx := context.Background()

	token, err := mgr.Issue(ctx, Principal{Username: "alice", Role: "teacher", UserID: 7})
	if err != nil {
		t.Fatalf("Issue 失败: %v", err)
	}

	p, err := mgr.Authorize(ctx, token)
	if err != nil {
		t.Fatalf("Authorize 失败: %v", err)
	}
	if p.Username != "alice" || p.Role != "teacher" || p.UserID != 7 {
		t.Errorf("会话身份不符: %+v", p)
	}
}

func TestManager_Authorize_EmptyAndForged(t *testing.T) {
	mgr, _, _ := setupManager(time.Hour)
	ctx := context.Background()

	if _, err := mgr.Authorize(ctx, ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("空令牌期望 ErrNotAuthenticated，实际: %v", err)
	}
	if _, err := mgr.Authorize(ctx, "forged.token.value"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("伪造令牌期望 ErrNotAuthenticated，实际: %v", err)
	}
}

func TestManager_IdleTimeoutSlides(t *testing.T) {
	mgr, _, clock := setupManager(time.Hour)
	ctx := context.Background()

	token, _ := mgr.Issue(ctx, Principal{Username: "alice", Role: "teacher", UserID: 1})

	// 50 分钟后访问，顺延空闲窗口
	clock.t = clock.t.Add(50 * time.Minute)
	if _, err := mgr.Authorize(ctx, token); err != nil {
		t.Fatalf("空闲窗口内应有效: %v", err)
	}

	// 距上次访问 50 分钟，仍有效
	clock.t = clock.t.Add(50 * time.Minute)
	if _, err := mgr.Authorize(ctx, token); err != nil {
		t.Fatalf("顺延后应有效: %v", err)
	}

	// 超过 1 小时无操作，失效
	clock.t = clock.t.Add(61 * time.Minute)
	if _, err := mgr.Authorize(ctx, token); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("空闲超时后期望 ErrNotAuthenticated，实际: %v", err)
	}
}

func TestManager_Destroy_Idempotent(t *testing.T) {
	mgr, store, _ := setupManager(time.Hour)
	ctx := context.Background()

	token, _ := mgr.Issue(ctx, Principal{Username: "alice", Role: "teacher", UserID: 1})
	if store.Len() != 1 {
		t.Fatalf("期望 1 个会话，实际=%d", store.Len())
	}

	if err := mgr.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy 失败: %v", err)
	}
	if _, err := mgr.Authorize(ctx, token); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("销毁后期望 ErrNotAuthenticated，实际: %v", err)
	}

	// 重复销毁、空令牌、无效令牌均不报错
	for _, tok := range []string{token, "", "garbage"} {
		if err := mgr.Destroy(ctx, tok); err != nil {
			t.Errorf("Destroy(%q) 应幂等，实际: %v", tok, err)
		}
	}
	if store.Len() != 0 {
		t.Errorf("期望 0 个会话，实际=%d", store.Len())
	}
}

type failingStore struct{ err error }

func (f *failingStore) Save(context.Context, string, []byte, time.Duration) error { return f.err }
func (f *failingStore) Load(context.Context, string, time.Duration) ([]byte, bool, error) {
	return nil, false, f.err
}
func (f *failingStore) Delete(context.Context, string) error { return f.err }

func TestManager_StoreFailure(t *testing.T) {
	boom := errors.New("connection refused")
	signer := jwt.NewManager(&config.SessionConfig{Secret: "test-secret-key-for-unit-testing-2026"})
	mgr := NewManager(&failingStore{err: boom}, signer, time.Hour)
	ctx := context.Background()

	if _, err := mgr.Issue(ctx, Principal{Username: "alice"}); !errors.Is(err, boom) {
		t.Errorf("期望包装存储错误，实际: %v", err)
	}

	token, _ := signer.Sign("sess-1")
	_, err := mgr.Authorize(ctx, token)
	if !errors.Is(err, boom) || errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("存储故障不应被当作未登录，实际: %v", err)
	}
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	if got := TokenFromRequest(r, "score_session"); got != "" {
		t.Errorf("无令牌时期望空串，实际=%q", got)
	}

	r.Header.Set("Authorization", "Bearer abc.def")
	if got := TokenFromRequest(r, "score_session"); got != "abc.def" {
		t.Errorf("期望读取 Bearer 令牌，实际=%q", got)
	}

	// Cookie 优先
	r.AddCookie(&http.Cookie{Name: "score_session", Value: "from-cookie"})
	if got := TokenFromRequest(r, "score_session"); got != "from-cookie" {
		t.Errorf("期望优先读取 Cookie，实际=%q", got)
	}
}
