package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"student-score/backend/config"
)

// Client Redis 客户端封装
// 用于会话存储与登录限流
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// NewFromClient 包装已有 go-redis 客户端（测试用）
func NewFromClient(rdb *goredis.Client, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── 会话存储（实现 session.Store）──

const sessionPrefix = "session:"

// Save 写入会话数据，TTL 为空闲超时
func (c *Client) Save(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionPrefix+id, data, ttl).Err()
}

// Load 读取会话数据并顺延 TTL（GETEX）
func (c *Client) Load(ctx context.Context, id string, ttl time.Duration) ([]byte, bool, error) {
	data, err := c.rdb.GetEx(ctx, sessionPrefix+id, ttl).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Delete 删除会话，不存在时不报错
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, sessionPrefix+id).Err()
}

// ── 限流 ──

// 滑动窗口限流脚本：清理窗口外记录，未超限时才记入本次请求
// KEYS[1]=限流键 ARGV[1]=窗口起点 ARGV[2]=当前时间(纳秒) ARGV[3]=上限 ARGV[4]=窗口(毫秒)
var slidingWindowScript = goredis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[3]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

// CheckRateLimit 滑动窗口计数，返回本次请求是否放行
// 被拒绝的请求不计入窗口，窗口滑过后即恢复
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	allowed, err := slidingWindowScript.Run(ctx, c.rdb, []string{key},
		strconv.FormatInt(now.Add(-window).UnixNano(), 10),
		strconv.FormatInt(now.UnixNano(), 10),
		limit,
		window.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
