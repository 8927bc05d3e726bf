package model

// 好友关系状态
const (
	FriendPending  = 0
	FriendAccepted = 1
	FriendRejected = 2
)

// Friendship 好友关系，存储时保证 User1ID < User2ID，
// 使同一对用户无论谁发起都只有一行
type Friendship struct {
	Model
	User1ID     uint `gorm:"not null;index:idx_pair,unique" json:"user1_id"`
	User2ID     uint `gorm:"not null;index:idx_pair,unique" json:"user2_id"`
	Status      int  `gorm:"default:0;not null" json:"status"`
	RequesterID uint `gorm:"not null" json:"requester_id"`
}

// CanonicalPair 将两个用户 ID 规范化为 (小, 大) 顺序
func CanonicalPair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// Counterpart 返回关系中相对 userID 的另一方
func (f *Friendship) Counterpart(userID uint) uint {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}
