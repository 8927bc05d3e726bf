package user

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化用户模块的路由
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	// 定义用户模块的路由组，所有用户相关端点以 /user 为前缀
	userGroup := r.Group("/user")

	// 注册、登录无需认证
	userGroup.POST("/register", Register)
	userGroup.POST("/login", Login)

	authGroup := userGroup.Use(middleware.Auth(0))
	{
		authGroup.POST("/logout", Logout)
		authGroup.GET("/me", GetMe)
		authGroup.PUT("/profile", UpdateProfile)
		authGroup.PUT("/password", ChangePassword)
		authGroup.POST("/avatar", UploadAvatar)
		authGroup.GET("/search", SearchUsers)
		authGroup.POST("/follow/:id", FollowUser)
		authGroup.DELETE("/follow/:id", UnfollowUser)
		authGroup.GET("/following", ListFollowing)
	}
}
