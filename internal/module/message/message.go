package message

import (
	"strconv"
	"strings"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SendMessageReq 定义发送私信请求的结构体
type SendMessageReq struct {
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// parseCounterpartID 解析路径中的对方用户 ID
func parseCounterpartID(c *gin.Context) (uint, bool) {
	idStr := c.Param("user_id")
	id, err := strconv.ParseUint(idStr, 10, 0)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("用户ID格式错误"))
		return 0, false
	}
	return uint(id), true
}

// SendMessage 发送私信
// 不要求双方为好友，任何注册用户之间都可以互发
func SendMessage(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("私信内容不能为空"))
		return
	}
	if req.ReceiverID == payload.UserID {
		response.Fail(c, response.ErrInvalidRequest.WithTips("不能给自己发私信"))
		return
	}

	var receiver model.User
	if err := database.DB.First(&receiver, req.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	msg := model.Message{
		SenderID:   payload.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		log.Error("发送私信失败", "error", err, "receiver_id", req.ReceiverID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("私信已发送",
		"message_id", msg.ID,
		"sender_id", payload.UserID,
		"receiver_id", req.ReceiverID)

	response.Created(c, gin.H{
		"message_id": msg.ID,
	})
}

// GetConversation 查询与某用户的会话记录，按时间正序
// 只读操作，不修改已读状态，已读由 MarkRead 显式触发
func GetConversation(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	counterpartID, ok := parseCounterpartID(c)
	if !ok {
		return
	}

	var messages []model.Message
	if err := database.DB.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			payload.UserID, counterpartID, counterpartID, payload.UserID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		log.Error("查询会话失败", "error", err, "counterpart_id", counterpartID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// MarkRead 将某用户发来的未读私信全部标记为已读
func MarkRead(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	counterpartID, ok := parseCounterpartID(c)
	if !ok {
		return
	}

	result := database.DB.Model(&model.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", counterpartID, payload.UserID, false).
		Update("is_read", true)
	if result.Error != nil {
		log.Error("标记已读失败", "error", result.Error, "counterpart_id", counterpartID)
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}

	response.Success(c, gin.H{
		"marked": result.RowsAffected,
	})
}

// ConversationSummary 会话摘要
type ConversationSummary struct {
	User        model.User    `json:"user"`
	LastMessage model.Message `json:"last_message"`
	UnreadCount int64         `json:"unread_count"`
}

// ListConversations 查询会话列表
// 每个对话对象取最近一条消息，按最近消息时间倒序
func ListConversations(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var messages []model.Message
	if err := database.DB.
		Where("sender_id = ? OR receiver_id = ?", payload.UserID, payload.UserID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		log.Error("查询会话列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 消息已按时间倒序，首次出现的对方即为该会话的最新消息
	latest := make(map[uint]model.Message)
	order := make([]uint, 0)
	unread := make(map[uint]int64)
	for _, m := range messages {
		counterpart := m.SenderID
		if counterpart == payload.UserID {
			counterpart = m.ReceiverID
		}
		if _, seen := latest[counterpart]; !seen {
			latest[counterpart] = m
			order = append(order, counterpart)
		}
		if m.ReceiverID == payload.UserID && !m.IsRead {
			unread[counterpart]++
		}
	}

	conversations := make([]ConversationSummary, 0, len(order))
	for _, counterpart := range order {
		var u model.User
		if err := database.DB.First(&u, counterpart).Error; err != nil {
			continue
		}
		conversations = append(conversations, ConversationSummary{
			User:        u,
			LastMessage: latest[counterpart],
			UnreadCount: unread[counterpart],
		})
	}

	response.Success(c, gin.H{
		"conversations": conversations,
		"count":         len(conversations),
	})
}

// UnreadCount 查询当前用户未读私信总数
func UnreadCount(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var count int64
	if err := database.DB.Model(&model.Message{}).
		Where("receiver_id = ? AND is_read = ?", payload.UserID, false).
		Count(&count).Error; err != nil {
		log.Error("查询未读数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"unread_count": count,
	})
}
