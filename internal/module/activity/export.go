package activity

import (
	"fmt"
	"net/url"
	"time"

	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"
	"college-platform-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// participantRow 报名名单导出行
type participantRow struct {
	Username  string `excel:"用户名"`
	RealName  string `excel:"姓名"`
	StudentNo string `excel:"学号"`
	Major     string `excel:"专业"`
	Phone     string `excel:"电话"`
	JoinedAt  string `excel:"报名时间"`
}

// ExportParticipants 导出活动报名名单为 Excel（仅教师）
func ExportParticipants(c *gin.Context) {
	activityID, err := parseActivityID(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	var activity model.Activity
	if dbErr := database.DB.First(&activity, activityID).Error; dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	var participants []model.ActivityParticipant
	if dbErr := database.DB.
		Where("activity_id = ?", activityID).
		Order("created_at ASC").
		Find(&participants).Error; dbErr != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(dbErr))
		return
	}

	rows := make([]participantRow, 0, len(participants))
	for _, p := range participants {
		var user model.User
		if dbErr := database.DB.First(&user, p.UserID).Error; dbErr != nil {
			continue
		}
		rows = append(rows, participantRow{
			Username:  user.Username,
			RealName:  user.RealName,
			StudentNo: user.StudentNo,
			Major:     user.Major,
			Phone:     user.Phone,
			JoinedAt:  time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04:05"),
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	if exportErr := tools.ExportToExcel(f, "报名名单", rows); exportErr != nil {
		log.Error("导出报名名单失败", "error", exportErr, "activity_id", activityID)
		response.Fail(c, response.ErrServer.WithOrigin(exportErr))
		return
	}

	displayName := fmt.Sprintf("%s-报名名单.xlsx", activity.Title)
	escaped := url.QueryEscape(displayName)
	c.Header("Content-Type", tools.ExcelContentType)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))

	if writeErr := f.Write(c.Writer); writeErr != nil {
		log.Error("写出 Excel 失败", "error", writeErr, "activity_id", activityID)
	}
}
