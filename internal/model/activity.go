package model

type Activity struct {
	Model
	Title            string `gorm:"type:varchar(100);not null" json:"title"` // 活动标题
	Type             string `gorm:"type:varchar(20);not null" json:"type"`   // 活动类型
	Time             string `gorm:"type:varchar(50);not null" json:"time"`   // 活动时间（展示用字符串）
	Location         string `gorm:"type:varchar(100);not null" json:"location"`
	Tags             string `gorm:"type:varchar(255)" json:"tags"`           // 标签，逗号分隔
	Description      string `gorm:"type:text" json:"description"`
	InitiatorID      uint   `gorm:"not null;index" json:"initiator_id"`
	ParticipantLimit int    `gorm:"default:0" json:"participant_limit"`      // 0 表示不限制
	Fee              int    `gorm:"default:0" json:"fee"`
	SignupDeadline   int64  `gorm:"default:0" json:"signup_deadline"`        // 报名截止（毫秒时间戳），0 表示不限制
	Status           string `gorm:"type:varchar(20);default:'open'" json:"status"`
	QRToken          string `gorm:"type:varchar(36)" json:"qr_token"`        // 活动二维码令牌
	// 关联到发起人
	Initiator User `gorm:"foreignKey:InitiatorID" json:"initiator"`
}

// ActivityParticipant 活动报名关联表
type ActivityParticipant struct {
	UserID     uint  `gorm:"not null;index:idx_user_activity,unique" json:"user_id"`
	ActivityID uint  `gorm:"not null;index:idx_user_activity,unique" json:"activity_id"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli" json:"created_at"`
}

// ActivityFavorite 活动收藏关联表
type ActivityFavorite struct {
	UserID     uint  `gorm:"not null;index:idx_user_fav_activity,unique" json:"user_id"`
	ActivityID uint  `gorm:"not null;index:idx_user_fav_activity,unique" json:"activity_id"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli" json:"created_at"`
}
