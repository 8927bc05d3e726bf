package user

import (
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// searchResultLimit 用户搜索结果上限
const searchResultLimit = 20

// UserSearchResult 搜索结果条目，附带与当前用户的好友关系
type UserSearchResult struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar"`
	Role         string `json:"role"`
	FriendStatus string `json:"friend_status"` // none / pending / accepted / rejected
}

// SearchUsers 按用户名或邮箱模糊搜索用户，排除自己，最多返回 20 条
func SearchUsers(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	keyword := c.Query("keyword")
	if keyword == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("搜索关键词不能为空"))
		return
	}

	var users []model.User
	like := "%" + keyword + "%"
	if err := database.DB.
		Where("(username LIKE ? OR email LIKE ?) AND id <> ?", like, like, payload.UserID).
		Limit(searchResultLimit).
		Find(&users).Error; err != nil {
		log.Error("搜索用户失败", "error", err, "keyword", keyword)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	results := make([]UserSearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, UserSearchResult{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			Avatar:       u.Avatar,
			Role:         u.Role(),
			FriendStatus: friendStatusWith(payload.UserID, u.ID),
		})
	}

	response.Success(c, gin.H{
		"users": results,
		"count": len(results),
	})
}

// friendStatusWith 查询当前用户与目标用户的好友关系状态
func friendStatusWith(me, other uint) string {
	u1, u2 := model.CanonicalPair(me, other)
	var friendship model.Friendship
	err := database.DB.
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		First(&friendship).Error
	if err != nil {
		return "none"
	}
	switch friendship.Status {
	case model.FriendPending:
		return "pending"
	case model.FriendAccepted:
		return "accepted"
	case model.FriendRejected:
		return "rejected"
	}
	return "none"
}
