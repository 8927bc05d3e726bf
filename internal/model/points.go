package model

// PointsLedger 积分流水，只追加
type PointsLedger struct {
	Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Delta      int    `gorm:"not null" json:"delta"`
	Reason     string `gorm:"type:varchar(50);not null" json:"reason"`
	ActivityID uint   `gorm:"index" json:"activity_id"`
}

// 积分事由
const (
	PointsReasonSignIn = "activity_signin"
)

// SignInPoints 活动签到奖励积分
const SignInPoints = 5
