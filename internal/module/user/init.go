package user

import (
	"fmt"
	"log/slog"

	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/logger"
	"college-platform-backend/internal/model"
	"college-platform-backend/tools"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleUser struct{}

func (u *ModuleUser) GetName() string {
	return "User"
}

// reservedTeacherNames 预置教师账号用户名，注册时禁止占用
var reservedTeacherNames = []string{"teacherA", "teacherB", "teacherC", "teacherD", "teacherE"}

// defaultTeacherPassword 预置教师账号初始密码
const defaultTeacherPassword = "666888"

func (u *ModuleUser) Init() {
	log = logger.New("User")
	seedTeachers()
}

// seedTeachers 启动时初始化教师账号（如果不存在）
func seedTeachers() {
	if database.DB == nil {
		return
	}
	for _, username := range reservedTeacherNames {
		var existing model.User
		err := database.DB.Where("username = ?", username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("查询教师账号失败", "error", err, "username", username)
			continue
		}
		teacher := model.User{
			Username: username,
			Password: tools.PasswordEncrypt(defaultTeacherPassword),
			Email:    fmt.Sprintf("%s@school.com", username),
			RoleID:   model.RoleTeacher,
			RealName: username,
			Bio:      "官方认证教师-" + username,
			Avatar:   model.DefaultAvatar,
		}
		if err := database.DB.Create(&teacher).Error; err != nil {
			log.Error("创建教师账号失败", "error", err, "username", username)
			continue
		}
		log.Info("教师账号已初始化", "username", username)
	}
}

func isReservedUsername(username string) bool {
	for _, name := range reservedTeacherNames {
		if name == username {
			return true
		}
	}
	return false
}
