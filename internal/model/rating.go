package model

import (
	"time"
)

// Rating 社区评分，取值 1-5，每个用户对一篇文章仅保留一条
type Rating struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	ArticleID uint64    `gorm:"primaryKey;index:idx_rating_article" json:"article_id"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
