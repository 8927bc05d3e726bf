package activity

import (
	"os"
	"testing"

	"college-platform-backend/internal/global/logger"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log = logger.New("Activity")
	os.Exit(m.Run())
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{"篮球", "音乐", "编程"}, splitTags("篮球, 音乐 ,编程"))
	require.Equal(t, []string{"basketball"}, splitTags("Basketball"))
	require.Nil(t, splitTags(""))
	require.Empty(t, splitTags(" , ,"))
}

func TestTagsIntersect(t *testing.T) {
	require.True(t, tagsIntersect([]string{"篮球", "音乐"}, []string{"音乐", "舞蹈"}))
	require.False(t, tagsIntersect([]string{"篮球"}, []string{"舞蹈"}))
	require.False(t, tagsIntersect(nil, []string{"舞蹈"}))
	require.False(t, tagsIntersect([]string{"篮球"}, nil))
}

func TestCreateActivityUnauthorized(t *testing.T) {
	resp := test.DoRequest(t, CreateActivity, gin.H{
		"title": "周末篮球赛",
	})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}
