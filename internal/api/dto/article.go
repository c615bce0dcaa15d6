package dto

// ArticleDTO 文章详情
type ArticleDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content"`
	IsDestination bool      `json:"is_destination"`
	ContinentID   *uint64   `json:"continent_id,omitempty"`
	Tags          []*TagDTO `json:"tags"`
	AvgRating     *float64  `json:"avg_rating,omitempty"`
	RatingsCount  int64     `json:"ratings_count"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`

	// Author
	AuthorID        uint64  `json:"author_id"`
	AuthorFirstName *string `json:"author_first_name,omitempty"`
	AuthorLastName  *string `json:"author_last_name,omitempty"`
}

// ArticleBaseDTO 文章 - 新增或修改
type ArticleBaseDTO struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Slug          string   `json:"slug" binding:"required" validate:"min=1,max=255"`
	Content       string   `json:"content" binding:"required" validate:"min=1"`
	IsDestination bool     `json:"is_destination"`
	ContinentID   *uint64  `json:"continent_id"`
	Tags          []string `json:"tags" validate:"max=20"`
}

// SearchArticleDTO 关键词检索
type SearchArticleDTO struct {
	Keyword string `form:"keyword" binding:"required" validate:"min=1,max=100"`
	PageDTO
}
