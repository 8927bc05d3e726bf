package response

import "net/http"

var (
	ErrInvalidRequest  = newError(http.StatusBadRequest, 40001, "请求参数错误")
	ErrUnauthorized    = newError(http.StatusUnauthorized, 40101, "未登录或登录已过期")
	ErrTokenInvalid    = newError(http.StatusUnauthorized, 40102, "无效的登录凭证")
	ErrInvalidPassword = newError(http.StatusUnauthorized, 40103, "用户名或密码错误")
	ErrForbidden       = newError(http.StatusForbidden, 40301, "没有操作权限")
	ErrNotFound        = newError(http.StatusNotFound, 40401, "资源不存在")
	ErrAlreadyExists   = newError(http.StatusConflict, 40901, "资源已存在")
	ErrDuplicate       = newError(http.StatusConflict, 40902, "检测到疑似重复内容")
	ErrDatabase        = newError(http.StatusInternalServerError, 50001, "数据库操作失败")
	ErrServer          = newError(http.StatusInternalServerError, 50002, "服务器内部错误")
)
