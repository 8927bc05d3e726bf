package cache

import (
	"context"
	"time"

	"college-platform-backend/config"
	"college-platform-backend/internal/global/sentry/tracing"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 配置 Sentry 性能追踪（如果 Sentry 已启用）
	if tracing.IsEnabled() {
		Client.AddHook(tracing.NewRedisSentryHook())
	}
}

const (
	denyTokenPrefix  = "deny_token:"
	signInCodePrefix = "signin_code:"
)

// DenyToken 将令牌 jti 加入黑名单，保留至令牌过期
func DenyToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return Client.Set(ctx, denyTokenPrefix+jti, 1, ttl).Err()
}

// IsTokenDenied 检查令牌是否已登出
// Redis 不可用时放行，认证仍由签名和过期时间保证
func IsTokenDenied(ctx context.Context, jti string) bool {
	if Client == nil || jti == "" {
		return false
	}
	n, err := Client.Exists(ctx, denyTokenPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// SetSignInCode 写入活动签到码，短时有效
func SetSignInCode(ctx context.Context, code string, activityID uint, ttl time.Duration) error {
	return Client.Set(ctx, signInCodePrefix+code, activityID, ttl).Err()
}

// GetSignInCode 根据签到码查询活动 ID，不存在或已过期返回 false
func GetSignInCode(ctx context.Context, code string) (uint, bool) {
	id, err := Client.Get(ctx, signInCodePrefix+code).Uint64()
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
