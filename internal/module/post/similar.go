package post

import (
	"sort"
	"strconv"
	"strings"

	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultSimilarityThreshold 默认判重阈值
const DefaultSimilarityThreshold = 0.75

// SimilarPost 疑似重复候选
type SimilarPost struct {
	PostID   uint    `json:"post_id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	AuthorID uint    `json:"author_id"`
	Score    float64 `json:"score"`
}

// normalizeText 统一小写并折叠空白，降低格式差异对相似度的影响
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// similarityRatio 计算两段文本的相似度，取值 [0,1]
func similarityRatio(a, b string) float64 {
	a = normalizeText(a)
	b = normalizeText(b)
	if a == "" && b == "" {
		return 0
	}
	// 按字符比较，中英文混排下比按词更稳
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}

// findSimilar 将候选 (title+content) 与全部帖子逐一比较
// 全表线性扫描，帖子量级小可接受
func findSimilar(title, content string, threshold float64) ([]SimilarPost, error) {
	candidate := title + "\n" + content

	var posts []model.Post
	if err := database.DB.Select("id", "title", "category", "content", "author_id").
		Find(&posts).Error; err != nil {
		return nil, err
	}

	matches := make([]SimilarPost, 0)
	for _, p := range posts {
		score := similarityRatio(candidate, p.Title+"\n"+p.Content)
		if score >= threshold {
			matches = append(matches, SimilarPost{
				PostID:   p.ID,
				Title:    p.Title,
				Category: p.Category,
				AuthorID: p.AuthorID,
				Score:    score,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

// FindSimilarPosts 查询与给定标题/正文疑似重复的帖子
func FindSimilarPosts(c *gin.Context) {
	title := c.Query("title")
	content := c.Query("content")
	if title == "" && content == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("标题和正文不能同时为空"))
		return
	}

	threshold := DefaultSimilarityThreshold
	if t := c.Query("threshold"); t != "" {
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil || parsed <= 0 || parsed > 1 {
			response.Fail(c, response.ErrInvalidRequest.WithTips("阈值需在 (0,1] 之间"))
			return
		}
		threshold = parsed
	}

	matches, err := findSimilar(title, content, threshold)
	if err != nil {
		log.Error("查询相似帖子失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"matches":   matches,
		"count":     len(matches),
		"threshold": threshold,
	})
}
