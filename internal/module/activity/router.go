package activity

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	// 定义活动模块的路由组，所有活动相关端点以 /activity 为前缀
	activityGroup := r.Group("/activity")

	commonGroup := activityGroup.Use(middleware.Auth(0))
	{
		// 活动 CRUD
		commonGroup.POST("/create", CreateActivity)
		commonGroup.GET("/list", ListActivities)
		commonGroup.GET("/get/:id", GetActivity)

		// 检索与推荐
		commonGroup.GET("/search", SearchActivities)
		commonGroup.GET("/recommend", RecommendActivities)

		// 报名与收藏
		commonGroup.POST("/join/:id", JoinActivity)
		commonGroup.POST("/leave/:id", LeaveActivity)
		commonGroup.POST("/favorite/:id", ToggleFavorite)
		commonGroup.GET("/favorites", ListFavorites)

		// 签到
		commonGroup.GET("/signin-code/:id", GetSignInCode)
		commonGroup.POST("/signin", SignIn)

		// 组队招募
		commonGroup.POST("/recruit", CreateRecruit)
		commonGroup.GET("/recruit/:activity_id", ListRecruits)
	}

	teacherGroup := activityGroup.Use(middleware.Auth(1))
	{
		// 删除活动仅教师可用
		teacherGroup.DELETE("/delete/:id", DeleteActivity)
		// 导出报名名单
		teacherGroup.GET("/export/:id", ExportParticipants)
	}
}
