package model

import "time"

// Destination 由标记为目的地的文章同步产生，slug 与文章保持一致
type Destination struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(220);not null;uniqueIndex:idx_destination_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Country     string    `gorm:"type:varchar(100)" json:"country"`
	City        string    `gorm:"type:varchar(100)" json:"city"`
	ContinentID *uint64   `json:"continent_id"`
	ArticleID   uint64    `gorm:"not null;index:idx_destination_article" json:"article_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Continent *Continent `gorm:"foreignKey:ContinentID;references:ID"`
}

func (Destination) TableName() string {
	return "destinations"
}
