package model

type Message struct {
	Model
	SenderID   uint   `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint   `gorm:"not null;index" json:"receiver_id"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsRead     bool   `gorm:"default:false" json:"is_read"`
}
