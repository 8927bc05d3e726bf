package post

import (
	"strings"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// validReactionTypes 支持的互动类型
var validReactionTypes = map[string]bool{
	model.ReactionLike:     true,
	model.ReactionFavorite: true,
	model.ReactionRepost:   true,
	model.ReactionUseful:   true,
	model.ReactionReward:   true,
}

// ReactionReq 定义互动请求的结构体
type ReactionReq struct {
	PostID uint   `json:"post_id" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// ToggleReaction 帖子互动
// 同一用户对同一帖子的同类互动最多一条，重复提交视为取消
func ToggleReaction(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ReactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !validReactionTypes[req.Type] {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不支持的互动类型"))
		return
	}

	var post model.Post
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
		return
	}
	if !canViewPost(payload, &post) {
		response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
		return
	}

	result := database.DB.
		Where("user_id = ? AND post_id = ? AND type = ?", payload.UserID, req.PostID, req.Type).
		Delete(&model.Reaction{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		// 已有同类互动，本次为取消
		response.Success(c, gin.H{"active": false})
		return
	}

	reaction := model.Reaction{
		UserID: payload.UserID,
		PostID: req.PostID,
		Type:   req.Type,
	}
	if err := database.DB.Create(&reaction).Error; err != nil {
		// 并发下唯一索引兜底
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			response.Success(c, gin.H{"active": true})
			return
		}
		log.Error("写入互动失败", "error", err, "post_id", req.PostID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"active": true})
}

// ListReactions 查询帖子各类互动数
func ListReactions(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	post, ok := getVisiblePost(c, payload, c.Param("id"))
	if !ok {
		return
	}

	type typeCount struct {
		Type  string `json:"type"`
		Count int64  `json:"count"`
	}
	var counts []typeCount
	if err := database.DB.Model(&model.Reaction{}).
		Select("type, count(*) as count").
		Where("post_id = ?", post.ID).
		Group("type").
		Find(&counts).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	result := make(map[string]int64, len(validReactionTypes))
	for t := range validReactionTypes {
		result[t] = 0
	}
	for _, tc := range counts {
		result[tc.Type] = tc.Count
	}

	response.Success(c, gin.H{
		"post_id":   post.ID,
		"reactions": result,
	})
}
