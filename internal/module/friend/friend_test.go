package friend

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
	log = logger.New("Friend")
	os.Exit(m.Run())
}

func TestSendRequestUnauthorized(t *testing.T) {
	resp := test.DoRequest(t, SendRequest, FriendRequestReq{UserID: 2})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}

func TestSendRequestToSelf(t *testing.T) {
	payload := jwt.Payload{UserID: 1, Username: "student1", RoleID: 0}
	resp := test.DoRequestAs(t, SendRequest, payload, FriendRequestReq{UserID: 1})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
