package model

const (
	RoleStudent = 0
	RoleTeacher = 1
)

// DefaultAvatar 注册时的默认头像路径
const DefaultAvatar = "/static/avatars/default.jpg"

type User struct {
	Model
	Username  string `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	RoleID    int    `gorm:"default:0;not null" json:"role_id"`
	RealName  string `gorm:"type:varchar(50)" json:"real_name"`
	StudentNo string `gorm:"type:varchar(20)" json:"student_no"`
	Major     string `gorm:"type:varchar(50)" json:"major"`
	Grade     string `gorm:"type:varchar(20)" json:"grade"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	Gender    string `gorm:"type:varchar(10)" json:"gender"`
	Bio       string `gorm:"type:varchar(255)" json:"bio"`
	Hobbies   string `gorm:"type:varchar(255)" json:"hobbies"` // 兴趣标签，逗号分隔
	Avatar    string `gorm:"type:varchar(255)" json:"avatar"`
}

// Role 返回角色名称，用于响应序列化
func (u *User) Role() string {
	if u.RoleID >= RoleTeacher {
		return "teacher"
	}
	return "student"
}
