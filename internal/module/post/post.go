package post

import (
	"strconv"
	"strings"

	"college-platform-backend/config"
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/httpclient"
	"college-platform-backend/internal/global/jwt"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/global/sentry/tracing"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostCreateReq 定义发帖请求的结构体
type PostCreateReq struct {
	Title      string            `json:"title" binding:"required"`
	Category   string            `json:"category" binding:"required"`
	Content    string            `json:"content"`
	IsMarkdown bool              `json:"is_markdown"`
	Tags       string            `json:"tags"`
	Metadata   map[string]string `json:"metadata"`
	Media      []model.MediaItem `json:"media"`
	OrgName    string            `json:"org_name"`
	Force      bool              `json:"force"` // 忽略重复警告强制发布
}

// CreatePost 处理发帖请求
// 检测到疑似重复且未指定 force 时返回 409 及候选列表；
// 教师发帖直接通过审核，学生发帖进入待审核
func CreatePost(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req PostCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定发帖请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !isValidCategory(req.Category) {
		log.Warn("帖子分类不合法", "category", req.Category)
		response.Fail(c, response.ErrInvalidRequest.WithTips("不支持的帖子分类"))
		return
	}

	if missing := validateMetadata(req.Category, req.Metadata); len(missing) > 0 {
		log.Warn("帖子模板字段缺失", "category", req.Category, "missing", missing)
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少必填字段: "+strings.Join(missing, "、")))
		return
	}

	if err := probeMediaURLs(c, req.Media); err != nil {
		log.Warn("帖子附件链接校验失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	// 相似度判重
	if !req.Force {
		matches, err := findSimilar(req.Title, req.Content, DefaultSimilarityThreshold)
		if err != nil {
			log.Error("查询相似帖子失败", "error", err)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if len(matches) > 0 {
			log.Warn("检测到疑似重复帖子",
				"title", req.Title,
				"matches", len(matches),
				"user_id", payload.UserID)
			response.FailWithData(c, response.ErrDuplicate, gin.H{
				"matches": matches,
			})
			return
		}
	}

	// 教师发布直接通过审核，学生发布进入待审核
	reviewStatus := model.ReviewPending
	isOfficial := false
	if payload.RoleID >= model.RoleTeacher {
		reviewStatus = model.ReviewApproved
		isOfficial = true
	}

	post := model.Post{
		Title:        req.Title,
		Category:     req.Category,
		Content:      req.Content,
		IsMarkdown:   req.IsMarkdown,
		Tags:         req.Tags,
		Media:        req.Media,
		Metadata:     req.Metadata,
		AuthorID:     payload.UserID,
		IsOfficial:   isOfficial,
		OrgName:      req.OrgName,
		ReviewStatus: reviewStatus,
	}

	if err := database.DB.Create(&post).Error; err != nil {
		log.Error("创建帖子失败", "error", err, "title", req.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("帖子创建成功",
		"post_id", post.ID,
		"category", post.Category,
		"review_status", post.ReviewStatus,
		"author_id", payload.UserID)

	response.Created(c, gin.H{
		"post_id":       post.ID,
		"review_status": post.ReviewStatus,
	})
}

// probeMediaURLs 探测外链附件可达性（仅在配置开启时）
// 网络错误不阻断发布，仅明确 4xx/5xx 视为无效链接
func probeMediaURLs(c *gin.Context, media []model.MediaItem) error {
	if !config.Get().Upload.ProbeMedia || httpclient.Client == nil {
		return nil
	}
	for _, item := range media {
		if !strings.HasPrefix(item.URL, "http://") && !strings.HasPrefix(item.URL, "https://") {
			continue
		}
		resp, err := httpclient.Client.R().
			SetContext(tracing.ContextWithSpan(c)).
			Head(item.URL)
		if err != nil {
			continue
		}
		if resp.StatusCode() >= 400 {
			return errors.Errorf("附件链接不可用: %s", item.Filename)
		}
	}
	return nil
}

// canViewPost 帖子可见性：已过审，或作者本人，或教师
func canViewPost(payload *jwt.Claims, post *model.Post) bool {
	if post.ReviewStatus == model.ReviewApproved {
		return true
	}
	if payload == nil {
		return false
	}
	return post.AuthorID == payload.UserID || payload.RoleID >= model.RoleTeacher
}

// ListPostsReq 定义帖子列表的查询参数结构体
type ListPostsReq struct {
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ListPosts 获取帖子列表
// 未过审帖子仅作者与教师可见
func ListPosts(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ListPostsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := database.DB.Model(&model.Post{})
	if payload.RoleID < model.RoleTeacher {
		query = query.Where("review_status = ? OR author_id = ?", model.ReviewApproved, payload.UserID)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Tag != "" {
		query = query.Where("tags LIKE ?", "%"+req.Tag+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("获取帖子总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var posts []model.Post
	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("Author").
		Order("created_at DESC").
		Offset(offset).Limit(req.PageSize).
		Find(&posts).Error; err != nil {
		log.Error("获取帖子列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"posts":       posts,
		"total":       total,
		"page":        req.Page,
		"page_size":   req.PageSize,
		"total_pages": (total + int64(req.PageSize) - 1) / int64(req.PageSize),
	})
}

// getVisiblePost 按 ID 查询帖子并执行可见性检查
func getVisiblePost(c *gin.Context, payload *jwt.Claims, idStr string) (*model.Post, bool) {
	if idStr == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("帖子ID不能为空"))
		return nil, false
	}
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("帖子ID格式错误"))
		return nil, false
	}

	var post model.Post
	if dbErr := database.DB.Preload("Author").First(&post, uint(id)).Error; dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
			return nil, false
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return nil, false
	}

	if !canViewPost(payload, &post) {
		// 对无权限者隐藏存在性
		response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
		return nil, false
	}
	return &post, true
}

// GetPost 获取帖子详情
func GetPost(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	post, ok := getVisiblePost(c, payload, c.Param("id"))
	if !ok {
		return
	}

	response.Success(c, gin.H{
		"post": post,
	})
}

// DeletePost 删除帖子（作者本人或教师）
func DeletePost(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	idStr := c.Param("id")
	if idStr == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("帖子ID不能为空"))
		return
	}

	var post model.Post
	if err := database.DB.First(&post, "id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("帖子不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if post.AuthorID != payload.UserID && payload.RoleID < model.RoleTeacher {
		log.Warn("无权限删除帖子", "post_id", post.ID, "user_id", payload.UserID)
		response.Fail(c, response.ErrForbidden.WithTips("无权限删除该帖子"))
		return
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		log.Error("删除帖子失败", "error", err, "post_id", post.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("帖子删除成功", "post_id", post.ID, "user_id", payload.UserID)
	response.Success(c)
}
