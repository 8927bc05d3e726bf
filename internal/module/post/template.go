package post

import (
	"college-platform-backend/internal/global/response"

	"github.com/gin-gonic/gin"
)

// TemplateField 分类模板中的一个附加字段
type TemplateField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// categoryTemplates 固定的分类模板，metadata 按此校验
var categoryTemplates = map[string][]TemplateField{
	"教学科研": {
		{Name: "course", Label: "课程名称", Required: false},
		{Name: "teacher", Label: "授课教师", Required: false},
	},
	"社团活动": {
		{Name: "club", Label: "社团名称", Required: true},
		{Name: "time", Label: "活动时间", Required: false},
		{Name: "location", Label: "活动地点", Required: false},
	},
	"生活服务": {
		{Name: "service_type", Label: "服务类型", Required: false},
		{Name: "time", Label: "服务时间", Required: false},
	},
	"科研竞赛": {
		{Name: "organizer", Label: "主办方", Required: true},
		{Name: "deadline", Label: "报名截止", Required: true},
	},
	"失物招领": {
		{Name: "item", Label: "物品名称", Required: true},
		{Name: "found_location", Label: "拾得地点", Required: false},
		{Name: "contact", Label: "联系方式", Required: true},
	},
	"二手交易": {
		{Name: "price", Label: "价格", Required: true},
		{Name: "condition", Label: "成色", Required: false},
		{Name: "contact", Label: "联系方式", Required: true},
	},
}

// isValidCategory 检查分类是否在固定枚举内
func isValidCategory(category string) bool {
	_, ok := categoryTemplates[category]
	return ok
}

// validateMetadata 校验 metadata 是否包含分类模板的必填字段
func validateMetadata(category string, metadata map[string]string) []string {
	var missing []string
	for _, field := range categoryTemplates[category] {
		if !field.Required {
			continue
		}
		if metadata[field.Name] == "" {
			missing = append(missing, field.Label)
		}
	}
	return missing
}

// ListTemplates 返回固定的分类模板（只读参考数据）
func ListTemplates(c *gin.Context) {
	response.Success(c, gin.H{
		"templates": categoryTemplates,
	})
}
