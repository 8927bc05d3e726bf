package points

import (
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// GetLedger 查询当前用户的积分流水，按时间倒序
func GetLedger(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var entries []model.PointsLedger
	if err := database.DB.
		Where("user_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		log.Error("查询积分流水失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetBalance 查询当前用户积分余额，流水增量求和
func GetBalance(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var balance int64
	if err := database.DB.Model(&model.PointsLedger{}).
		Where("user_id = ?", payload.UserID).
		Select("COALESCE(SUM(delta), 0)").
		Scan(&balance).Error; err != nil {
		log.Error("查询积分余额失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"balance": balance,
	})
}
