package post

import (
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ReviewReq 定义审核请求的结构体
type ReviewReq struct {
	PostID  uint   `json:"post_id" binding:"required"`
	Status  int    `json:"status" binding:"required"` // 1 通过, 2 拒绝
	Comment string `json:"comment"`
}

// reviewTransitionError 校验审核状态流转
// 目标状态只能为通过或拒绝，且仅允许从待审核状态流转一次
func reviewTransitionError(current, target int) *response.Error {
	if target != model.ReviewApproved && target != model.ReviewRejected {
		return response.ErrInvalidRequest.WithTips("审核状态只能为通过或拒绝")
	}
	if current != model.ReviewPending {
		return response.ErrAlreadyExists.WithTips("该帖子已完成审核")
	}
	return nil
}

// ReviewPost 审核帖子（仅教师）
// 只允许从待审核状态流转；审核动作追加记录到审核历史
func ReviewPost(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定审核请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var post model.Post
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("帖子不存在", "post_id", req.PostID)
			response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if e := reviewTransitionError(post.ReviewStatus, req.Status); e != nil {
		log.Warn("审核流转被拒绝",
			"post_id", post.ID,
			"review_status", post.ReviewStatus,
			"target_status", req.Status,
			"reviewer_id", payload.UserID)
		response.Fail(c, e)
		return
	}

	review := model.PostReview{
		PostID:     post.ID,
		ReviewerID: payload.UserID,
		Status:     req.Status,
		Comment:    req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		log.Error("写入审核记录失败", "error", err, "post_id", post.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	post.ReviewStatus = req.Status
	if err := database.DB.Save(&post).Error; err != nil {
		log.Error("更新审核状态失败", "error", err, "post_id", post.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("帖子审核完成",
		"post_id", post.ID,
		"status", req.Status,
		"reviewer_id", payload.UserID)

	response.Success(c, gin.H{
		"post_id":       post.ID,
		"review_status": post.ReviewStatus,
	})
}

// GetPendingPosts 查询待审核帖子列表（仅教师）
func GetPendingPosts(c *gin.Context) {
	var posts []model.Post
	if err := database.DB.Preload("Author").
		Where("review_status = ?", model.ReviewPending).
		Order("created_at ASC").
		Find(&posts).Error; err != nil {
		log.Error("查询待审核帖子失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}
