package friend

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (f *ModuleFriend) InitRouter(r *gin.RouterGroup) {
	friendGroup := r.Group("/friend")

	commonGroup := friendGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/request", SendRequest)
		commonGroup.POST("/respond/:id", RespondRequest)
		commonGroup.GET("/list", ListFriends)
		commonGroup.GET("/pending", ListPending)
		commonGroup.DELETE("/delete/:id", DeleteFriend)
	}
}
