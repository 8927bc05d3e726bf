package group

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

// GroupCreateReq 定义创建群组请求的结构体
type GroupCreateReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// parseID 解析路径中的数字 ID
func parseID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("ID格式错误"))
		return 0, false
	}
	return uint(id), true
}

// CreateGroup 创建群组，创建者即群主
// 群组名称全局唯一
func CreateGroup(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req GroupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var existing model.Group
	err := database.DB.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		response.Fail(c, response.ErrAlreadyExists.WithTips("群组名称已被占用"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	g := model.Group{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     payload.UserID,
	}
	if err := database.DB.Create(&g).Error; err != nil {
		// 并发下唯一索引兜底
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			response.Fail(c, response.ErrAlreadyExists.WithTips("群组名称已被占用"))
			return
		}
		log.Error("创建群组失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("群组创建成功", "group_id", g.ID, "owner_id", payload.UserID)
	response.Created(c, gin.H{
		"group_id": g.ID,
	})
}

// ListGroups 查询全部群组
func ListGroups(c *gin.Context) {
	var groups []model.Group
	if err := database.DB.Order("created_at DESC").Find(&groups).Error; err != nil {
		log.Error("查询群组列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"groups": groups,
		"count":  len(groups),
	})
}

// JoinGroup 申请加入群组
func JoinGroup(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	groupID, ok := parseID(c)
	if !ok {
		return
	}

	var g model.Group
	if err := database.DB.First(&g, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("群组不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if g.OwnerID == payload.UserID {
		response.Fail(c, response.ErrInvalidRequest.WithTips("群主无需申请加入"))
		return
	}

	var existing model.GroupJoinRequest
	err := database.DB.Where("group_id = ? AND user_id = ?", groupID, payload.UserID).
		First(&existing).Error
	if err == nil {
		switch existing.Status {
		case model.GroupRequestApproved:
			response.Fail(c, response.ErrAlreadyExists.WithTips("你已在该群组中"))
		case model.GroupRequestPending:
			response.Fail(c, response.ErrAlreadyExists.WithTips("入组申请已存在"))
		default:
			// 被拒绝后允许重新申请
			existing.Status = model.GroupRequestPending
			if err := database.DB.Save(&existing).Error; err != nil {
				response.Fail(c, response.ErrDatabase.WithOrigin(err))
				return
			}
			response.Created(c, gin.H{"request_id": existing.ID})
		}
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	request := model.GroupJoinRequest{
		GroupID: groupID,
		UserID:  payload.UserID,
		Status:  model.GroupRequestPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		log.Error("创建入组申请失败", "error", err, "group_id", groupID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("入组申请已提交", "request_id", request.ID, "group_id", groupID, "user_id", payload.UserID)
	response.Created(c, gin.H{
		"request_id": request.ID,
	})
}

// JoinRequestInfo 入组申请项
type JoinRequestInfo struct {
	RequestID  uint       `json:"request_id"`
	User       model.User `json:"user"`
	CreateTime string     `json:"create_time"`
}

// ListJoinRequests 查询群组的待处理入组申请，仅群主可见
func ListJoinRequests(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	groupID, ok := parseID(c)
	if !ok {
		return
	}

	var g model.Group
	if err := database.DB.First(&g, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("群组不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if g.OwnerID != payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("仅群主可查看入组申请"))
		return
	}

	var requests []model.GroupJoinRequest
	if err := database.DB.
		Where("group_id = ? AND status = ?", groupID, model.GroupRequestPending).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		log.Error("查询入组申请失败", "error", err, "group_id", groupID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	items := make([]JoinRequestInfo, 0, len(requests))
	for _, r := range requests {
		var u model.User
		if err := database.DB.First(&u, r.UserID).Error; err != nil {
			continue
		}
		items = append(items, JoinRequestInfo{
			RequestID:  r.ID,
			User:       u,
			CreateTime: r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	response.Success(c, gin.H{
		"requests": items,
		"count":    len(items),
	})
}

// ReviewJoinReq 定义处理入组申请请求的结构体
type ReviewJoinReq struct {
	Approve bool `json:"approve"`
}

// ReviewJoinRequest 处理入组申请，仅群主可操作
func ReviewJoinRequest(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	requestID, ok := parseID(c)
	if !ok {
		return
	}

	var req ReviewJoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var request model.GroupJoinRequest
	if err := database.DB.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("入组申请不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var g model.Group
	if err := database.DB.First(&g, request.GroupID).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if g.OwnerID != payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("仅群主可处理入组申请"))
		return
	}
	if request.Status != model.GroupRequestPending {
		response.Fail(c, response.ErrAlreadyExists.WithTips("该申请已处理"))
		return
	}

	if req.Approve {
		request.Status = model.GroupRequestApproved
	} else {
		request.Status = model.GroupRequestRejected
	}
	if err := database.DB.Save(&request).Error; err != nil {
		log.Error("更新入组申请失败", "error", err, "request_id", request.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("入组申请已处理",
		"request_id", request.ID,
		"group_id", request.GroupID,
		"approve", req.Approve)

	response.Success(c, gin.H{
		"request_id": request.ID,
		"status":     request.Status,
	})
}
