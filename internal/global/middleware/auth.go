package middleware

import (
	"strings"

	"college-platform-backend/internal/global/cache"
	"college-platform-backend/internal/global/jwt"
	"college-platform-backend/internal/global/response"

	"github.com/gin-gonic/gin"
)

// TokenCookieName 登录时下发的会话 cookie 名称
const TokenCookieName = "token"

// Auth 认证中间件，minRoleID 为该路由要求的最低角色（0 学生，1 教师）
// 令牌可携带于 Authorization: Bearer 头或会话 cookie
func Auth(minRoleID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 已登出的令牌在黑名单中
		if cache.IsTokenDenied(c.Request.Context(), payload.Id) {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if payload.RoleID < minRoleID {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}
