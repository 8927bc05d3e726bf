package post

import (
	"os"
	"testing"

	"college-platform-backend/internal/global/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log = logger.New("Post")
	os.Exit(m.Run())
}

func TestSimilarityRatioIdentical(t *testing.T) {
	score := similarityRatio("Java编程竞赛报名通知", "Java编程竞赛报名通知")
	require.Equal(t, 1.0, score)
}

func TestSimilarityRatioNearDuplicate(t *testing.T) {
	a := "Java编程竞赛报名通知\n本周五下午在计算机楼举行Java编程竞赛，欢迎各位同学踊跃报名参加"
	b := "Java编程竞赛报名通知\n本周五下午在计算机楼举行Java编程竞赛，欢迎大家踊跃报名参加"
	score := similarityRatio(a, b)
	require.GreaterOrEqual(t, score, DefaultSimilarityThreshold)
}

func TestSimilarityRatioUnrelated(t *testing.T) {
	a := "失物招领：图书馆捡到一把雨伞"
	b := "二手出售九成新山地自行车，价格面议"
	score := similarityRatio(a, b)
	require.Less(t, score, DefaultSimilarityThreshold)
}

func TestSimilarityRatioCaseAndWhitespace(t *testing.T) {
	// 大小写和空白差异不应影响相似度
	score := similarityRatio("Hello   World", "hello world")
	require.Equal(t, 1.0, score)
}

func TestSimilarityRatioBothEmpty(t *testing.T) {
	require.Equal(t, 0.0, similarityRatio("", ""))
	require.Equal(t, 0.0, similarityRatio("   ", "\t\n"))
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "hello world", normalizeText("  Hello \t World \n"))
	require.Equal(t, "", normalizeText("   "))
}
