package activity

import (
	"strings"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ActivityCreateReq 定义创建活动请求的结构体
type ActivityCreateReq struct {
	Title            string `json:"title" binding:"required"`    // 活动标题
	Type             string `json:"type" binding:"required"`     // 活动类型
	Time             string `json:"time" binding:"required"`     // 活动时间
	Location         string `json:"location" binding:"required"` // 活动地点
	Tags             string `json:"tags"`                        // 标签，逗号分隔
	Description      string `json:"description"`                 // 活动描述
	ParticipantLimit int    `json:"participant_limit"`           // 人数上限，0 不限制
	Fee              int    `json:"fee"`                         // 费用
	SignupDeadline   int64  `json:"signup_deadline"`             // 报名截止（毫秒时间戳）
}

// CreateActivity 处理创建活动请求
func CreateActivity(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ActivityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建活动请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	activity := model.Activity{
		Title:            req.Title,
		Type:             req.Type,
		Time:             req.Time,
		Location:         req.Location,
		Tags:             req.Tags,
		Description:      req.Description,
		InitiatorID:      payload.UserID,
		ParticipantLimit: req.ParticipantLimit,
		Fee:              req.Fee,
		SignupDeadline:   req.SignupDeadline,
		QRToken:          uuid.NewString(),
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		log.Error("创建活动失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动创建成功",
		"activity_id", activity.ID,
		"title", activity.Title,
		"initiator_id", payload.UserID,
	)

	response.Created(c, gin.H{
		"activity_id": activity.ID,
		"qr_token":    activity.QRToken,
	})
}

// ListActivitiesReq 定义获取活动列表的查询参数结构体
type ListActivitiesReq struct {
	Type     string `form:"type"`      // 活动类型筛选
	Page     int    `form:"page"`      // 页码，默认为1
	PageSize int    `form:"page_size"` // 每页大小，默认为10
}

// ActivityWithCount 活动及其报名人数
type ActivityWithCount struct {
	model.Activity
	ParticipantCount int64 `json:"participant_count"`
}

// ListActivities 获取活动列表（支持类型筛选与分页）
func ListActivities(c *gin.Context) {
	var req ListActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("绑定查询参数失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := database.DB.Model(&model.Activity{})
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("获取活动总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var activities []model.Activity
	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("Initiator").
		Order("created_at DESC").
		Offset(offset).Limit(req.PageSize).
		Find(&activities).Error; err != nil {
		log.Error("获取活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make([]ActivityWithCount, 0, len(activities))
	for _, a := range activities {
		result = append(result, ActivityWithCount{
			Activity:         a,
			ParticipantCount: participantCount(a.ID),
		})
	}

	response.Success(c, gin.H{
		"activities":  result,
		"total":       total,
		"page":        req.Page,
		"page_size":   req.PageSize,
		"total_pages": (total + int64(req.PageSize) - 1) / int64(req.PageSize),
	})
}

// participantCount 查询活动报名人数
func participantCount(activityID uint) int64 {
	var count int64
	database.DB.Model(&model.ActivityParticipant{}).
		Where("activity_id = ?", activityID).
		Count(&count)
	return count
}

// GetActivity 获取单个活动详情，附带当前用户的报名/收藏状态
func GetActivity(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID不能为空"))
		return
	}

	var activity model.Activity
	if err := database.DB.Preload("Initiator").First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var joined, favorited bool
	database.DB.Model(&model.ActivityParticipant{}).
		Select("count(*) > 0").
		Where("user_id = ? AND activity_id = ?", payload.UserID, activity.ID).
		Find(&joined)
	database.DB.Model(&model.ActivityFavorite{}).
		Select("count(*) > 0").
		Where("user_id = ? AND activity_id = ?", payload.UserID, activity.ID).
		Find(&favorited)

	response.Success(c, gin.H{
		"activity":          activity,
		"participant_count": participantCount(activity.ID),
		"joined":            joined,
		"favorited":         favorited,
	})
}

// DeleteActivity 处理删除活动请求（仅教师）
func DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("活动ID不能为空"))
		return
	}

	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("活动不存在", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&activity).Error; err != nil {
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动删除成功", "id", activity.ID, "title", activity.Title)
	response.Success(c)
}

// SearchActivitiesReq 定义活动搜索的查询参数结构体
type SearchActivitiesReq struct {
	Keyword string `form:"keyword"`
	Type    string `form:"type"`
}

// SearchActivities 按关键词搜索活动标题/地点，可选类型过滤
func SearchActivities(c *gin.Context) {
	var req SearchActivitiesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	query := database.DB.Model(&model.Activity{})
	if req.Keyword != "" {
		like := "%" + strings.ToLower(req.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", like, like)
	}
	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}

	var activities []model.Activity
	if err := query.Preload("Initiator").Order("created_at DESC").Find(&activities).Error; err != nil {
		log.Error("搜索活动失败", "error", err, "keyword", req.Keyword)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}

// RecommendActivities 根据用户兴趣标签推荐活动
// 活动标签与用户兴趣标签（均为逗号分隔）存在交集即推荐
func RecommendActivities(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	hobbies := splitTags(user.Hobbies)
	if len(hobbies) == 0 {
		// 无兴趣标签不是错误，返回空列表并附带说明
		response.SuccessWithMessage(c, "完善个人兴趣标签后可获得活动推荐", []model.Activity{})
		return
	}

	var activities []model.Activity
	if err := database.DB.Preload("Initiator").Order("created_at DESC").Find(&activities).Error; err != nil {
		log.Error("查询活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	matched := make([]model.Activity, 0)
	for _, a := range activities {
		if tagsIntersect(splitTags(a.Tags), hobbies) {
			matched = append(matched, a)
		}
	}

	response.Success(c, gin.H{
		"activities": matched,
		"count":      len(matched),
	})
}

// splitTags 拆分逗号分隔的标签串，去除空白并统一小写
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func tagsIntersect(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	for _, t := range b {
		if set[t] {
			return true
		}
	}
	return false
}
