package activity

import (
	"time"

	"college-platform-backend/internal/global/cache"
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// signInCodeTTL 签到码有效期
const signInCodeTTL = 10 * time.Minute

// GetSignInCode 生成活动签到码（发起人或教师）
// 签到码短时有效，写入 Redis，现场以二维码展示
func GetSignInCode(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	activityID, err := parseActivityID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	var activity model.Activity
	if dbErr := database.DB.First(&activity, activityID).Error; dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	if activity.InitiatorID != payload.UserID && payload.RoleID < model.RoleTeacher {
		log.Warn("无权限生成签到码", "activity_id", activityID, "user_id", payload.UserID)
		response.Fail(c, response.ErrForbidden.WithTips("仅活动发起人或教师可生成签到码"))
		return
	}

	code := uuid.NewString()
	if err := cache.SetSignInCode(c.Request.Context(), code, activity.ID, signInCodeTTL); err != nil {
		log.Error("写入签到码失败", "error", err, "activity_id", activityID)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"code":       code,
		"expires_in": int64(signInCodeTTL.Seconds()),
	})
}

// SignInReq 定义签到请求的结构体
type SignInReq struct {
	Code string `json:"code" binding:"required"`
}

// SignIn 活动扫码签到，首次签到奖励积分
func SignIn(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	activityID, valid := cache.GetSignInCode(c.Request.Context(), req.Code)
	if !valid {
		log.Warn("签到码无效或已过期", "user_id", payload.UserID)
		response.Fail(c, response.ErrNotFound.WithTips("签到码无效或已过期"))
		return
	}

	// 仅报名者可签到
	var joined bool
	database.DB.Model(&model.ActivityParticipant{}).
		Select("count(*) > 0").
		Where("user_id = ? AND activity_id = ?", payload.UserID, activityID).
		Find(&joined)
	if !joined {
		response.Fail(c, response.ErrForbidden.WithTips("未报名该活动"))
		return
	}

	// 每个活动仅首次签到计分
	var signedIn bool
	database.DB.Model(&model.PointsLedger{}).
		Select("count(*) > 0").
		Where("user_id = ? AND activity_id = ? AND reason = ?",
			payload.UserID, activityID, model.PointsReasonSignIn).
		Find(&signedIn)
	if signedIn {
		response.Fail(c, response.ErrAlreadyExists.WithTips("已签到"))
		return
	}

	entry := model.PointsLedger{
		UserID:     payload.UserID,
		Delta:      model.SignInPoints,
		Reason:     model.PointsReasonSignIn,
		ActivityID: activityID,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Error("写入积分流水失败", "error", err, "activity_id", activityID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动签到成功",
		"activity_id", activityID,
		"user_id", payload.UserID,
		"points", model.SignInPoints)

	response.Success(c, gin.H{
		"activity_id": activityID,
		"points":      model.SignInPoints,
	})
}
