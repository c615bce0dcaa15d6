package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ArticleID uint64    `gorm:"not null;index:idx_comment_article" json:"article_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
