package user

import (
	"fmt"

	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/global/upload"
	"college-platform-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// UploadAvatar 处理头像上传请求
// multipart 表单字段名为 avatar；扩展名白名单 + 2MB 上限
func UploadAvatar(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		log.Warn("未携带头像文件", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips("未选择文件"))
		return
	}

	bed := upload.NewFileBed("avatars")
	avatarURL, err := bed.Save(fileHeader, fmt.Sprintf("u%d", payload.UserID))
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrExtNotAllowed),
			errors.Is(err, upload.ErrFileTooLarge),
			errors.Is(err, upload.ErrEmptyFile):
			log.Warn("头像文件校验失败", "error", err, "user_id", payload.UserID)
			response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		default:
			log.Error("头像保存失败", "error", err, "user_id", payload.UserID)
			response.Fail(c, response.ErrServer.WithOrigin(err))
		}
		return
	}

	if err := database.DB.Model(&model.User{}).
		Where("id = ?", payload.UserID).
		Update("avatar", avatarURL).Error; err != nil {
		log.Error("更新头像路径失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("头像上传成功", "user_id", payload.UserID, "avatar", avatarURL)
	response.Success(c, gin.H{
		"avatar": avatarURL,
	})
}
