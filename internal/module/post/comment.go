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

// CommentCreateReq 定义发表评论请求的结构体
type CommentCreateReq struct {
	PostID   uint   `json:"post_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"` // 回复某条评论时填写
}

// CreateComment 发表评论或回复
// 评论受帖子可见性约束；父评论必须属于同一帖子
func CreateComment(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定评论请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var post model.Post
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !canViewPost(payload, &post) {
		response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
		return
	}

	if req.ParentID != nil {
		var parent model.Comment
		if err := database.DB.First(&parent, *req.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.ErrNotFound.WithTips("父评论不存在"))
				return
			}
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if parent.PostID != post.ID {
			log.Warn("父评论不属于该帖子",
				"post_id", post.ID,
				"parent_id", *req.ParentID)
			response.Fail(c, response.ErrInvalidRequest.WithTips("父评论不属于该帖子"))
			return
		}
	}

	comment := model.Comment{
		PostID:   post.ID,
		AuthorID: payload.UserID,
		ParentID: req.ParentID,
		Content:  req.Content,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		log.Error("创建评论失败", "error", err, "post_id", post.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("评论发表成功", "comment_id", comment.ID, "post_id", post.ID)
	response.Created(c, gin.H{
		"comment_id": comment.ID,
	})
}

// CommentNode 评论及其回复
type CommentNode struct {
	model.Comment
	Replies []model.Comment `json:"replies"`
}

// ListComments 查询帖子评论，顶层评论按时间排列并挂载回复
func ListComments(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	post, ok := getVisiblePost(c, payload, c.Param("id"))
	if !ok {
		return
	}

	var comments []model.Comment
	if err := database.DB.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		log.Error("查询评论失败", "error", err, "post_id", post.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 组装两级结构：顶层评论 + 回复
	replies := make(map[uint][]model.Comment)
	nodes := make([]CommentNode, 0)
	for _, cm := range comments {
		if cm.ParentID != nil {
			replies[*cm.ParentID] = append(replies[*cm.ParentID], cm)
		}
	}
	for _, cm := range comments {
		if cm.ParentID == nil {
			nodes = append(nodes, CommentNode{
				Comment: cm,
				Replies: replies[cm.ID],
			})
		}
	}

	response.Success(c, gin.H{
		"comments": nodes,
		"count":    len(comments),
	})
}
