package group

import (
	"os"
	"testing"

	"college-platform-backend/internal/global/jwt"
	"college-platform-backend/internal/global/logger"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/test"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log = logger.New("Group")
	os.Exit(m.Run())
}

func TestCreateGroupUnauthorized(t *testing.T) {
	resp := test.DoRequest(t, CreateGroup, GroupCreateReq{Name: "编程爱好者"})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}

func TestCreateGroupMissingName(t *testing.T) {
	payload := jwt.Payload{UserID: 1, Username: "student1", RoleID: 0}
	resp := test.DoRequestAs(t, CreateGroup, payload, gin.H{"description": "没有名字"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
