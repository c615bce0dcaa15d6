package model

import (
	"time"
)

// Recommendation 用户-文章推荐对，score 落在 [0.1, 0.99]
// 同一 (user, article) 至多一条，整组重建时先删后插
type Recommendation struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	ArticleID uint64    `gorm:"primaryKey" json:"article_id"`
	Score     float64   `gorm:"type:decimal(4,2);not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
