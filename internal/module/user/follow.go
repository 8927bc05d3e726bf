package user

import (
	"strconv"
	"strings"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func parseUserID(idStr string) (uint, error) {
	if idStr == "" {
		return 0, response.ErrInvalidRequest
	}
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		return 0, response.ErrInvalidRequest
	}
	return uint(id), nil
}

// FollowUser 关注指定用户
func FollowUser(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	targetID, err := parseUserID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if targetID == payload.UserID {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能关注自己"))
		return
	}

	var target model.User
	if dbErr := database.DB.First(&target, targetID).Error; dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	follow := model.Follow{
		FollowerID: payload.UserID,
		FollowedID: targetID,
	}
	if dbErr := database.DB.Create(&follow).Error; dbErr != nil {
		// 唯一索引兜底重复关注
		if strings.Contains(strings.ToLower(dbErr.Error()), "duplicate") {
			response.Fail(c, response.ErrAlreadyExists.WithTips("已关注该用户"))
			return
		}
		log.Error("创建关注关系失败", "error", dbErr, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	response.Success(c)
}

// UnfollowUser 取消关注
func UnfollowUser(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	targetID, err := parseUserID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	result := database.DB.
		Where("follower_id = ? AND followed_id = ?", payload.UserID, targetID).
		Delete(&model.Follow{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("未关注该用户"))
		return
	}

	response.Success(c)
}

// ListFollowing 查询当前用户关注的用户列表
func ListFollowing(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var follows []model.Follow
	if err := database.DB.
		Where("follower_id = ?", payload.UserID).
		Order("created_at DESC").
		Find(&follows).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	ids := make([]uint, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.FollowedID)
	}

	var users []model.User
	if len(ids) > 0 {
		if err := database.DB.Find(&users, ids).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	response.Success(c, gin.H{
		"following": users,
		"count":     len(users),
	})
}
