package model

// Follow 关注关系
type Follow struct {
	FollowerID uint  `gorm:"not null;index:idx_follow_pair,unique" json:"follower_id"`
	FollowedID uint  `gorm:"not null;index:idx_follow_pair,unique" json:"followed_id"`
	CreatedAt  int64 `gorm:"autoCreateTime:milli" json:"created_at"`
}
