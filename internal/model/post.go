package model

import (
	"database/sql/driver"
	"encoding/json"

	pkgerrors "github.com/pkg/errors"
)

// 帖子审核状态
const (
	ReviewPending  = 0 // 待审核
	ReviewApproved = 1 // 审核通过
	ReviewRejected = 2 // 不通过
)

// MediaItem 帖子附件
type MediaItem struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// MediaList 以 JSON 存储的附件列表
type MediaList []MediaItem

func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *MediaList) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return pkgerrors.Errorf("无法将 %T 解析为 MediaList", value)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}

// Metadata 以 JSON 存储的分类附加字段
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *Metadata) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return pkgerrors.Errorf("无法将 %T 解析为 Metadata", value)
	}
	if len(data) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(data, m)
}

type Post struct {
	Model
	Title        string    `gorm:"type:varchar(100);not null" json:"title"`
	Category     string    `gorm:"type:varchar(20);not null;index" json:"category"`
	Content      string    `gorm:"type:text" json:"content"`
	IsMarkdown   bool      `gorm:"default:false" json:"is_markdown"`
	Tags         string    `gorm:"type:varchar(255)" json:"tags"` // 标签，逗号分隔
	Media        MediaList `gorm:"type:json" json:"media"`
	Metadata     Metadata  `gorm:"type:json" json:"metadata"`
	AuthorID     uint      `gorm:"not null;index" json:"author_id"`
	IsOfficial   bool      `gorm:"default:false" json:"is_official"`
	OrgName      string    `gorm:"type:varchar(50)" json:"org_name"`
	ReviewStatus int       `gorm:"default:0;not null;index" json:"review_status"`
	// 关联到作者
	Author User `gorm:"foreignKey:AuthorID" json:"author"`
}

// Comment 帖子评论，parent_id 支持楼中楼
type Comment struct {
	Model
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	AuthorID uint   `gorm:"not null" json:"author_id"`
	ParentID *uint  `gorm:"index" json:"parent_id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
}

// 帖子互动类型
const (
	ReactionLike     = "like"
	ReactionFavorite = "favorite"
	ReactionRepost   = "repost"
	ReactionUseful   = "useful"
	ReactionReward   = "reward"
)

// Reaction 帖子互动，每人每帖每类型至多一条
type Reaction struct {
	UserID    uint   `gorm:"not null;index:idx_user_post_type,unique" json:"user_id"`
	PostID    uint   `gorm:"not null;index:idx_user_post_type,unique" json:"post_id"`
	Type      string `gorm:"type:varchar(10);not null;index:idx_user_post_type,unique" json:"type"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

// PostReview 审核记录，只追加不修改
type PostReview struct {
	Model
	PostID     uint   `gorm:"not null;index" json:"post_id"`
	ReviewerID uint   `gorm:"not null" json:"reviewer_id"`
	Status     int    `gorm:"not null" json:"status"`
	Comment    string `gorm:"type:varchar(255)" json:"comment"`
}
