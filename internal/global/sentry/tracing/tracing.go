// Package tracing 提供 Sentry 性能追踪的集成
// 包含 GORM、Redis 和 HTTP 客户端的追踪实现
package tracing

import (
	"context"

	"college-platform-backend/config"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回携带当前 Sentry span 的 context
// 用于将 gin.Context 转换为可以传递给 GORM/Redis 的 context
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil || c.Request.Context() == nil {
		return context.Background()
	}
	// sentrygin 中间件已经将 span 存储在 request context 中
	return c.Request.Context()
}

// StartSpan 在当前请求的 transaction 下创建一个业务 span
// 返回值需要调用 Finish() 结束
func StartSpan(c *gin.Context, operation, description string) *sentry.Span {
	parentSpan := sentry.SpanFromContext(ContextWithSpan(c))
	if parentSpan == nil {
		return &sentry.Span{}
	}
	span := parentSpan.StartChild(operation)
	span.Description = description
	return span
}
