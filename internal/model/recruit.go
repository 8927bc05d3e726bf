package model

// TeamRecruit 活动组队招募
type TeamRecruit struct {
	Model
	ActivityID  uint   `gorm:"not null;index" json:"activity_id"`
	AuthorID    uint   `gorm:"not null" json:"author_id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	Contact     string `gorm:"type:varchar(100)" json:"contact"`
}
