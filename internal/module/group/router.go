package group

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (g *ModuleGroup) InitRouter(r *gin.RouterGroup) {
	groupGroup := r.Group("/group")

	// 群组列表对外开放
	groupGroup.GET("/list", ListGroups)

	commonGroup := groupGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/create", CreateGroup)
		commonGroup.POST("/join/:id", JoinGroup)
		commonGroup.GET("/requests/:id", ListJoinRequests)
		commonGroup.POST("/review/:id", ReviewJoinRequest)
	}
}
