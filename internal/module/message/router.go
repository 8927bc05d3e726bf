package message

import (
	"college-platform-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (m *ModuleMessage) InitRouter(r *gin.RouterGroup) {
	messageGroup := r.Group("/message")

	commonGroup := messageGroup.Use(middleware.Auth(0))
	{
		commonGroup.POST("/send", SendMessage)
		commonGroup.GET("/conversation/:user_id", GetConversation)
		commonGroup.POST("/read/:user_id", MarkRead)
		commonGroup.GET("/conversations", ListConversations)
		commonGroup.GET("/unread-count", UnreadCount)
	}
}
