package response

import (
	"errors"
	"net/http"

	"college-platform-backend/config"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// ResponseBody 统一响应体
// 成功: {success: true, code: 200, data: ...}
// 失败: {success: false, code: xxx, error: "..."}
type ResponseBody struct {
	Success bool   `json:"success"`
	Code    int32  `json:"code"`
	Msg     string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Err     string `json:"error,omitempty"`
	Origin  string `json:"origin,omitempty"`
}

// Success 返回成功响应，data 可省略
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Success: true,
		Code:    200,
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Created 返回创建成功响应（201）
func Created(c *gin.Context, data ...any) {
	body := ResponseBody{
		Success: true,
		Code:    201,
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusCreated, body)
}

// SuccessWithMessage 返回成功响应并附带说明（如推荐结果为空的原因）
func SuccessWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, ResponseBody{
		Success: true,
		Code:    200,
		Msg:     message,
		Data:    data,
	})
}

// Fail 返回失败响应，按错误码映射 HTTP 状态
func Fail(c *gin.Context, err error) {
	FailWithData(c, err, nil)
}

// FailWithData 返回失败响应并携带附加数据（如重复内容候选列表）
func FailWithData(c *gin.Context, err error, data any) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServer.WithOrigin(err)
	}

	body := ResponseBody{
		Success: false,
		Code:    e.Code,
		Err:     e.Message,
		Data:    data,
	}
	// 原始错误详情仅在 debug 模式下渲染给前端
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}

	// 供 Sentry 中间件上报
	c.Set(ErrorContextKey, e)

	c.JSON(e.Status, body)
}

// Recovery 捕获 handler panic，转换为 500 响应并上报 Sentry
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = pkgerrors.Errorf("panic: %v", r)
		}
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.Recover(r)
		}
		Fail(c, ErrServer.WithOrigin(err))
		c.Abort()
	}
}
