package context

import (
	"college-platform-backend/internal/global/jwt"

	"github.com/gin-gonic/gin"
)

func GetUserPayload(c *gin.Context) (userPayload *jwt.Claims, exist bool) {
	payload, _ := c.Get("payload")
	userPayload, exist = payload.(*jwt.Claims)
	return
}

// IsTeacher 判断当前请求者是否为教师
func IsTeacher(c *gin.Context) bool {
	payload, ok := GetUserPayload(c)
	return ok && payload.RoleID >= 1
}
