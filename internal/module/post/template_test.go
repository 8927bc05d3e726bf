package post

import (
	"testing"

	"college-platform-backend/test"

	"github.com/stretchr/testify/require"
)

func TestIsValidCategory(t *testing.T) {
	for _, category := range []string{"教学科研", "社团活动", "生活服务", "科研竞赛", "失物招领", "二手交易"} {
		require.True(t, isValidCategory(category), category)
	}
	require.False(t, isValidCategory("不存在的分类"))
	require.False(t, isValidCategory(""))
}

func TestValidateMetadataMissingRequired(t *testing.T) {
	missing := validateMetadata("二手交易", map[string]string{
		"condition": "九成新",
	})
	require.ElementsMatch(t, []string{"价格", "联系方式"}, missing)
}

func TestValidateMetadataComplete(t *testing.T) {
	missing := validateMetadata("二手交易", map[string]string{
		"price":   "100",
		"contact": "13800000000",
	})
	require.Empty(t, missing)
}

func TestValidateMetadataOptionalOnly(t *testing.T) {
	// 教学科研分类没有必填字段，空 metadata 也应通过
	require.Empty(t, validateMetadata("教学科研", nil))
}

func TestListTemplates(t *testing.T) {
	resp := test.DoRequest(t, ListTemplates, nil)
	test.NoError(t, resp)
}
