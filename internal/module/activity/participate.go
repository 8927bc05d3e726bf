package activity

import (
	"strconv"
	"strings"
	"time"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func parseActivityID(idStr string) (uint, error) {
	if idStr == "" {
		return 0, response.ErrInvalidRequest.WithTips("活动ID不能为空")
	}
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		return 0, response.ErrInvalidRequest.WithTips("活动ID格式错误")
	}
	return uint(id), nil
}

// JoinActivity 报名参加活动
// 已报名、超过人数上限、超过报名截止时间均会失败
func JoinActivity(c *gin.Context) {
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

	if activity.SignupDeadline > 0 && time.Now().UnixMilli() > activity.SignupDeadline {
		log.Warn("报名已截止", "activity_id", activityID, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips("报名已截止"))
		return
	}

	// 幂等性校验：重复报名直接失败
	var joined bool
	database.DB.Model(&model.ActivityParticipant{}).
		Select("count(*) > 0").
		Where("user_id = ? AND activity_id = ?", payload.UserID, activityID).
		Find(&joined)
	if joined {
		log.Warn("重复报名", "activity_id", activityID, "user_id", payload.UserID)
		response.Fail(c, response.ErrAlreadyExists.WithTips("已报名该活动"))
		return
	}

	if activity.ParticipantLimit > 0 && participantCount(activityID) >= int64(activity.ParticipantLimit) {
		log.Warn("活动人数已满", "activity_id", activityID)
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动人数已满"))
		return
	}

	participant := model.ActivityParticipant{
		UserID:     payload.UserID,
		ActivityID: activityID,
	}
	if dbErr := database.DB.Create(&participant).Error; dbErr != nil {
		// 并发下唯一索引兜底存在性检查
		if strings.Contains(strings.ToLower(dbErr.Error()), "duplicate") {
			response.Fail(c, response.ErrAlreadyExists.WithTips("已报名该活动"))
			return
		}
		log.Error("报名失败", "error", dbErr, "activity_id", activityID)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	log.Info("活动报名成功", "activity_id", activityID, "user_id", payload.UserID)
	response.Success(c, gin.H{
		"participant_count": participantCount(activityID),
	})
}

// LeaveActivity 取消报名；未报名时失败
func LeaveActivity(c *gin.Context) {
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

	result := database.DB.
		Where("user_id = ? AND activity_id = ?", payload.UserID, activityID).
		Delete(&model.ActivityParticipant{})
	if result.Error != nil {
		log.Error("取消报名失败", "error", result.Error, "activity_id", activityID)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		log.Warn("未报名该活动", "activity_id", activityID, "user_id", payload.UserID)
		response.Fail(c, response.ErrNotFound.WithTips("未报名该活动"))
		return
	}

	log.Info("取消报名成功", "activity_id", activityID, "user_id", payload.UserID)
	response.Success(c, gin.H{
		"participant_count": participantCount(activityID),
	})
}

// ToggleFavorite 收藏/取消收藏活动，返回新的收藏状态
func ToggleFavorite(c *gin.Context) {
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

	var exist bool
	if dbErr := database.DB.Model(&model.Activity{}).
		Select("count(*) > 0").
		Where("id = ?", activityID).
		Find(&exist).Error; dbErr != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}
	if !exist {
		response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		return
	}

	result := database.DB.
		Where("user_id = ? AND activity_id = ?", payload.UserID, activityID).
		Delete(&model.ActivityFavorite{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		// 已收藏，本次为取消
		response.Success(c, gin.H{"favorited": false})
		return
	}

	favorite := model.ActivityFavorite{
		UserID:     payload.UserID,
		ActivityID: activityID,
	}
	if dbErr := database.DB.Create(&favorite).Error; dbErr != nil {
		log.Error("收藏活动失败", "error", dbErr, "activity_id", activityID)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	response.Success(c, gin.H{"favorited": true})
}

// ListFavorites 查询当前用户收藏的活动
func ListFavorites(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var favorites []model.ActivityFavorite
	if err := database.DB.
		Where("user_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ActivityID)
	}

	activities := make([]model.Activity, 0)
	if len(ids) > 0 {
		if err := database.DB.Preload("Initiator").Find(&activities, ids).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	response.Success(c, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}
