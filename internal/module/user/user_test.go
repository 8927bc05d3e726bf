package user

import (
	"os"
	"strings"
	"testing"

	"college-platform-backend/internal/global/logger"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log = logger.New("User")
	os.Exit(m.Run())
}

func TestValidatePassword(t *testing.T) {
	require.Error(t, validatePassword("short"))
	require.Error(t, validatePassword("1234567"))
	require.NoError(t, validatePassword("12345678"))
	require.NoError(t, validatePassword("a-much-longer-password"))
}

func TestValidateUsername(t *testing.T) {
	require.NoError(t, validateUsername("abc"))
	require.NoError(t, validateUsername(strings.Repeat("a", 20)))
	// 中文用户名按字符数计：7 个字符（21 字节）合法
	require.NoError(t, validateUsername("计算机学院学生甲"))
	require.Error(t, validateUsername("ab"))
	// 2 个字符（6 字节）不足下限
	require.Error(t, validateUsername("张三"))
	require.Error(t, validateUsername(strings.Repeat("a", 21)))
	require.Error(t, validateUsername("teacherA"))
}

func TestIsReservedUsername(t *testing.T) {
	require.True(t, isReservedUsername("teacherA"))
	require.True(t, isReservedUsername("teacherE"))
	require.False(t, isReservedUsername("teacherF"))
	require.False(t, isReservedUsername("student1"))
}

func TestRegisterUsernameTooShort(t *testing.T) {
	resp := test.DoRequest(t, Register, RegisterReq{
		Username: "ab",
		Password: "12345678",
		Email:    "ab@school.com",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestRegisterReservedUsername(t *testing.T) {
	resp := test.DoRequest(t, Register, RegisterReq{
		Username: "teacherA",
		Password: "12345678",
		Email:    "someone@school.com",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestRegisterChineseUsernameTooShort(t *testing.T) {
	resp := test.DoRequest(t, Register, RegisterReq{
		Username: "张三",
		Password: "12345678",
		Email:    "zhangsan@school.com",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestRegisterWeakPassword(t *testing.T) {
	resp := test.DoRequest(t, Register, RegisterReq{
		Username: "student1",
		Password: "1234567",
		Email:    "student1@school.com",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
