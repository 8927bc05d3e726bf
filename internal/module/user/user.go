package user

import (
	"time"
	"unicode/utf8"

	"college-platform-backend/config"
	"college-platform-backend/internal/global/cache"
	"college-platform-backend/internal/global/context"
	"college-platform-backend/internal/global/database"
	"college-platform-backend/internal/global/jwt"
	"college-platform-backend/internal/global/middleware"
	"college-platform-backend/internal/global/response"
	"college-platform-backend/internal/model"
	"college-platform-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	RealName  string `json:"real_name"`
	StudentNo string `json:"student_no"`
	Major     string `json:"major"`
	Grade     string `json:"grade"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Bio       string `json:"bio"`
	Hobbies   string `json:"hobbies"`
}

// validatePassword 校验密码长度
func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("密码长度必须至少8字符")
	}
	return nil
}

// validateUsername 校验用户名长度与保留名
// 长度按字符数计算，中文用户名按字数而非字节数
func validateUsername(username string) error {
	if l := utf8.RuneCountInString(username); l < 3 || l > 20 {
		return errors.New("用户名长度需在3到20之间")
	}
	if isReservedUsername(username) {
		return errors.New("该用户名不可用")
	}
	return nil
}

// Register 处理用户注册请求
// 新用户角色固定为学生，教师账号由系统预置
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validateUsername(req.Username); err != nil {
		log.Warn("用户名校验失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}
	if err := validatePassword(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	// 检查用户名是否已存在
	var existingUser model.User
	err := database.DB.Where("username = ?", req.Username).First(&existingUser).Error
	if err == nil {
		log.Warn("用户名已存在", "username", req.Username)
		response.Fail(c, response.ErrAlreadyExists.WithTips("用户名已被注册"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 检查邮箱是否已存在
	err = database.DB.Where("email = ?", req.Email).First(&existingUser).Error
	if err == nil {
		log.Warn("邮箱已被注册", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("邮箱已被注册"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user := model.User{
		Username:  req.Username,
		Password:  tools.PasswordEncrypt(req.Password),
		Email:     req.Email,
		RoleID:    model.RoleStudent,
		RealName:  req.RealName,
		StudentNo: req.StudentNo,
		Major:     req.Major,
		Grade:     req.Grade,
		Phone:     req.Phone,
		Gender:    req.Gender,
		Bio:       req.Bio,
		Hobbies:   req.Hobbies,
		Avatar:    model.DefaultAvatar,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("创建用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功",
		"user_id", user.ID,
		"username", user.Username)

	response.Created(c, gin.H{
		"user_id": user.ID,
	})
}

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 查询用户是否存在
	var user model.User
	err := database.DB.Where("username = ?", req.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "username", req.Username)
		response.Fail(c, response.ErrInvalidPassword)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 验证密码
	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "username", req.Username)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	token := jwt.CreateToken(jwt.Payload{
		UserID:   user.ID,
		Username: user.Username,
		RoleID:   user.RoleID,
	})

	// 同时下发会话 cookie，页面端无需手动携带 Authorization 头
	maxAge := int(config.Get().JWT.AccessExpire)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", config.Get().Domain, false, true)

	log.Info("用户登录成功",
		"user_id", user.ID,
		"username", user.Username,
		"role_id", user.RoleID)

	response.Success(c, gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role(),
	})
}

// Logout 处理登出请求，将当前令牌加入黑名单并清除 cookie
func Logout(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	ttl := time.Until(time.Unix(payload.ExpiresAt, 0))
	if err := cache.DenyToken(c.Request.Context(), payload.Id, ttl); err != nil {
		log.Error("令牌加入黑名单失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrServer.WithOrigin(err))
		return
	}

	c.SetCookie(middleware.TokenCookieName, "", -1, "/", config.Get().Domain, false, true)

	log.Info("用户登出", "user_id", payload.UserID, "username", payload.Username)
	response.Success(c)
}

// GetMe 查询当前登录用户信息
func GetMe(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"user": user,
		"role": user.Role(),
	})
}

// UpdateProfileReq 定义更新资料请求的结构体，使用指针类型支持部分更新
type UpdateProfileReq struct {
	RealName  *string `json:"real_name"`
	StudentNo *string `json:"student_no"`
	Major     *string `json:"major"`
	Grade     *string `json:"grade"`
	Phone     *string `json:"phone"`
	Gender    *string `json:"gender"`
	Bio       *string `json:"bio"`
	Hobbies   *string `json:"hobbies"`
}

// UpdateProfile 更新当前用户的资料字段
func UpdateProfile(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新资料请求失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.RealName != nil {
		user.RealName = *req.RealName
	}
	if req.StudentNo != nil {
		user.StudentNo = *req.StudentNo
	}
	if req.Major != nil {
		user.Major = *req.Major
	}
	if req.Grade != nil {
		user.Grade = *req.Grade
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Hobbies != nil {
		user.Hobbies = *req.Hobbies
	}

	if err := database.DB.Save(&user).Error; err != nil {
		log.Error("更新资料失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户资料更新成功", "user_id", user.ID)
	response.Success(c, user)
}

// ChangePasswordReq 定义修改密码请求的结构体
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"` // 旧密码，用于验证
	NewPassword string `json:"new_password" binding:"required"` // 新密码，需加密后保存
}

// ChangePassword 处理用户修改密码请求
// 验证旧密码正确性后更新新密码，要求用户已通过认证
func ChangePassword(c *gin.Context) {
	payload, ok := context.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定修改密码请求失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 验证新密码强度
	if err := validatePassword(req.NewPassword); err != nil {
		log.Warn("新密码强度验证失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 验证旧密码
	if !tools.PasswordCompare(req.OldPassword, user.Password) {
		log.Warn("旧密码错误", "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	if err := database.DB.Model(&user).Update("password", tools.PasswordEncrypt(req.NewPassword)).Error; err != nil {
		log.Error("更新密码失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户修改密码成功", "user_id", user.ID, "username", user.Username)
	response.Success(c)
}
