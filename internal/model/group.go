package model

type Group struct {
	Model
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	OwnerID     uint   `gorm:"not null" json:"owner_id"`
}

// 入组申请状态
const (
	GroupRequestPending  = 0
	GroupRequestApproved = 1
	GroupRequestRejected = 2
)

// GroupJoinRequest 入组申请
type GroupJoinRequest struct {
	Model
	GroupID uint `gorm:"not null;index:idx_group_user,unique" json:"group_id"`
	UserID  uint `gorm:"not null;index:idx_group_user,unique" json:"user_id"`
	Status  int  `gorm:"default:0;not null" json:"status"`
}
