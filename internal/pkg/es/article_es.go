package es

import "time"

// ArticleES 写入 ES 的文章文档，评分聚合由 ArticleMetricJob 异步回填
type ArticleES struct {
	ID             uint64    `json:"id"`
	AuthorID       uint64    `json:"author_id"`
	AuthorNickname string    `json:"author_nickname"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	IsDestination  bool      `json:"is_destination"`
	AvgRating      float64   `json:"avg_rating"`
	RatingsCount   int64     `json:"ratings_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Sort []interface{} `json:"-"`
}
