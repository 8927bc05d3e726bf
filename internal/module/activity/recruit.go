package activity

import (
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// RecruitCreateReq 定义发布组队招募请求的结构体
type RecruitCreateReq struct {
	ActivityID  uint   `json:"activity_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

// CreateRecruit 在活动下发布组队招募
func CreateRecruit(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req RecruitCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var exist bool
	if err := database.DB.Model(&model.Activity{}).
		Select("count(*) > 0").
		Where("id = ?", req.ActivityID).
		Find(&exist).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !exist {
		response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
		return
	}

	recruit := model.TeamRecruit{
		ActivityID:  req.ActivityID,
		AuthorID:    payload.UserID,
		Title:       req.Title,
		Description: req.Description,
		Contact:     req.Contact,
	}
	if err := database.DB.Create(&recruit).Error; err != nil {
		log.Error("发布组队招募失败", "error", err, "activity_id", req.ActivityID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Created(c, gin.H{
		"recruit_id": recruit.ID,
	})
}

// ListRecruits 查询活动下的组队招募
func ListRecruits(c *gin.Context) {
	activityID, err := parseActivityID(c.Param("activity_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	var recruits []model.TeamRecruit
	if dbErr := database.DB.
		Where("activity_id = ?", activityID).
		Order("created_at DESC").
		Find(&recruits).Error; dbErr != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	response.Success(c, gin.H{
		"recruits": recruits,
		"count":    len(recruits),
	})
}
