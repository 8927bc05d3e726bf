package points

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModulePoints) InitRouter(r *gin.RouterGroup) {
	pointsGroup := r.Group("/points")

	commonGroup := pointsGroup.Use(middleware.Auth(0))
	{
		commonGroup.GET("/ledger", GetLedger)
		commonGroup.GET("/balance", GetBalance)
	}
}
