package model

import "time"

type Tag struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_name" json:"name"`
	Slug      string `gorm:"type:varchar(120);not null;uniqueIndex:idx_tag_slug" json:"slug"`
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}
