package friend

import (
	"strconv"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FriendRequestReq 定义好友申请请求的结构体
type FriendRequestReq struct {
	UserID uint `json:"user_id" binding:"required"`
}

// parseUserID 解析路径中的用户 ID
func parseUserID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("用户ID格式错误"))
		return 0, false
	}
	return uint(id), true
}

// SendRequest 发起好友申请
// 同一对用户只存一行，曾被拒绝的关系允许重新发起
func SendRequest(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req FriendRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.UserID == payload.UserID {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能添加自己为好友"))
		return
	}

	var target model.User
	if err := database.DB.First(&target, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	u1, u2 := model.CanonicalPair(payload.UserID, req.UserID)

	var existing model.Friendship
	err := database.DB.Where("user1_id = ? AND user2_id = ?", u1, u2).First(&existing).Error
	if err == nil {
		switch existing.Status {
		case model.FriendAccepted:
			response.Fail(c, response.ErrAlreadyExists.WithTips("你们已经是好友"))
			return
		case model.FriendPending:
			response.Fail(c, response.ErrAlreadyExists.WithTips("好友申请已存在"))
			return
		case model.FriendRejected:
			// 被拒绝的关系重新打开，申请方换成本次发起者
			existing.Status = model.FriendPending
			existing.RequesterID = payload.UserID
			if err := database.DB.Save(&existing).Error; err != nil {
				log.Error("更新好友申请失败", "error", err)
				response.Fail(c, response.ErrDatabase.WithOrigin(err))
				return
			}
			log.Info("好友申请已重新发起", "friendship_id", existing.ID, "requester_id", payload.UserID)
			response.Created(c, gin.H{"friendship_id": existing.ID})
			return
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	friendship := model.Friendship{
		User1ID:     u1,
		User2ID:     u2,
		Status:      model.FriendPending,
		RequesterID: payload.UserID,
	}
	if err := database.DB.Create(&friendship).Error; err != nil {
		log.Error("创建好友申请失败", "error", err, "target_id", req.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("好友申请已发送", "friendship_id", friendship.ID, "requester_id", payload.UserID)
	response.Created(c, gin.H{"friendship_id": friendship.ID})
}

// RespondReq 定义处理好友申请请求的结构体
type RespondReq struct {
	Accept bool `json:"accept"`
}

// RespondRequest 处理好友申请，仅被申请一方可操作
func RespondRequest(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req RespondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var friendship model.Friendship
	if err := database.DB.First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("好友申请不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if friendship.User1ID != payload.UserID && friendship.User2ID != payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("无权限处理该申请"))
		return
	}
	if friendship.RequesterID == payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("不能处理自己发起的申请"))
		return
	}
	if friendship.Status != model.FriendPending {
		response.Fail(c, response.ErrAlreadyExists.WithTips("该申请已处理"))
		return
	}

	if req.Accept {
		friendship.Status = model.FriendAccepted
	} else {
		friendship.Status = model.FriendRejected
	}
	if err := database.DB.Save(&friendship).Error; err != nil {
		log.Error("更新好友申请失败", "error", err, "friendship_id", friendship.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("好友申请已处理",
		"friendship_id", friendship.ID,
		"accept", req.Accept,
		"user_id", payload.UserID)

	response.Success(c, gin.H{
		"friendship_id": friendship.ID,
		"status":        friendship.Status,
	})
}

// FriendInfo 好友列表项
type FriendInfo struct {
	FriendshipID uint       `json:"friendship_id"`
	User         model.User `json:"user"`
}

// ListFriends 查询当前用户的好友列表
func ListFriends(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var friendships []model.Friendship
	if err := database.DB.
		Where("(user1_id = ? OR user2_id = ?) AND status = ?",
			payload.UserID, payload.UserID, model.FriendAccepted).
		Find(&friendships).Error; err != nil {
		log.Error("查询好友列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	friends := make([]FriendInfo, 0, len(friendships))
	for _, f := range friendships {
		var u model.User
		if err := database.DB.First(&u, f.Counterpart(payload.UserID)).Error; err != nil {
			continue
		}
		friends = append(friends, FriendInfo{FriendshipID: f.ID, User: u})
	}

	response.Success(c, gin.H{
		"friends": friends,
		"count":   len(friends),
	})
}

// PendingRequest 待处理好友申请项
type PendingRequest struct {
	FriendshipID uint       `json:"friendship_id"`
	Requester    model.User `json:"requester"`
	CreateTime   string     `json:"create_time"`
}

// ListPending 查询发给当前用户的待处理申请
func ListPending(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var friendships []model.Friendship
	if err := database.DB.
		Where("(user1_id = ? OR user2_id = ?) AND status = ? AND requester_id != ?",
			payload.UserID, payload.UserID, model.FriendPending, payload.UserID).
		Order("created_at DESC").
		Find(&friendships).Error; err != nil {
		log.Error("查询待处理申请失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	requests := make([]PendingRequest, 0, len(friendships))
	for _, f := range friendships {
		var u model.User
		if err := database.DB.First(&u, f.RequesterID).Error; err != nil {
			continue
		}
		requests = append(requests, PendingRequest{
			FriendshipID: f.ID,
			Requester:    u,
			CreateTime:   f.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	response.Success(c, gin.H{
		"requests": requests,
		"count":    len(requests),
	})
}

// DeleteFriend 删除好友关系
func DeleteFriend(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	targetID, ok := parseUserID(c)
	if !ok {
		return
	}

	u1, u2 := model.CanonicalPair(payload.UserID, targetID)
	result := database.DB.
		Where("user1_id = ? AND user2_id = ? AND status = ?", u1, u2, model.FriendAccepted).
		Delete(&model.Friendship{})
	if result.Error != nil {
		log.Error("删除好友失败", "error", result.Error)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("好友关系不存在"))
		return
	}

	log.Info("好友已删除", "user_id", payload.UserID, "target_id", targetID)
	response.Success(c)
}
