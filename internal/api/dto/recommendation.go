package dto

// RecommendationDTO 推荐条目，Score 已在落库前完成两位小数舍入
type RecommendationDTO struct {
	ArticleID    uint64   `json:"article_id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Score        float64  `json:"score"`
	AvgRating    *float64 `json:"avg_rating,omitempty"`
	RatingsCount int64    `json:"ratings_count"`
}
