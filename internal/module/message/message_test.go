package message

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
	log = logger.New("Message")
	os.Exit(m.Run())
}

var senderPayload = jwt.Payload{UserID: 1, Username: "student1", RoleID: 0}

func TestSendMessageUnauthorized(t *testing.T) {
	resp := test.DoRequest(t, SendMessage, SendMessageReq{ReceiverID: 2, Content: "你好"})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}

func TestSendMessageBlankContent(t *testing.T) {
	resp := test.DoRequestAs(t, SendMessage, senderPayload, SendMessageReq{
		ReceiverID: 2,
		Content:    "   ",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestSendMessageToSelf(t *testing.T) {
	resp := test.DoRequestAs(t, SendMessage, senderPayload, SendMessageReq{
		ReceiverID: 1,
		Content:    "你好",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
