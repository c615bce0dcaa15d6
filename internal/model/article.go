package model

import (
	"time"
)

type Article struct {
	ID            uint64  `gorm:"primaryKey" json:"id"`
	AuthorID      uint64  `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title         string  `gorm:"type:varchar(200);not null" json:"title"`
	Slug          string  `gorm:"type:varchar(220);not null;uniqueIndex:idx_article_slug" json:"slug"`
	Content       string  `gorm:"type:text;not null" json:"content"`
	IsDestination bool    `gorm:"type:tinyint(1);not null;default:0" json:"is_destination"`
	ContinentID   *uint64 `json:"continent_id"`
	// 由 ArticleMetricJob 从 ratings 表异步回填的冗余聚合
	AvgRating    *float64  `gorm:"type:decimal(3,2)" json:"avg_rating"`
	RatingsCount int64     `gorm:"not null;default:0" json:"ratings_count"`
	IsDeleted    bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联关系
	Author User  `gorm:"foreignKey:AuthorID;references:ID"`
	Tags   []Tag `gorm:"many2many:article_tags;"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleStats 推荐候选所需的文章聚合视图，非表映射
type ArticleStats struct {
	ArticleID    uint64
	AuthorID     uint64
	TagIDs       []uint64
	AvgRating    *float64
	RatingsCount int64
}
