package post

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModulePost) InitRouter(r *gin.RouterGroup) {
	// 定义帖子模块的路由组，所有帖子相关端点以 /post 为前缀
	postGroup := r.Group("/post")

	// 分类模板为只读参考数据，无需认证
	postGroup.GET("/templates", ListTemplates)

	commonGroup := postGroup.Use(middleware.Auth(0))
	{
		commonGroup.GET("/similar", FindSimilarPosts)
		commonGroup.POST("/create", CreatePost)
		commonGroup.GET("/list", ListPosts)
		commonGroup.GET("/get/:id", GetPost)
		commonGroup.DELETE("/delete/:id", DeletePost)

		commonGroup.POST("/comment", CreateComment)
		commonGroup.GET("/comments/:id", ListComments)

		commonGroup.POST("/react", ToggleReaction)
		commonGroup.GET("/reactions/:id", ListReactions)
	}

	teacherGroup := postGroup.Use(middleware.Auth(1))
	{
		// 审核相关端点仅教师可用
		teacherGroup.POST("/review", ReviewPost)
		teacherGroup.GET("/pending-list", GetPendingPosts)
	}
}
