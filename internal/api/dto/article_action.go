package dto

// RateArticleDTO 文章评分
type RateArticleDTO struct {
	Score int `json:"score" binding:"required" validate:"min=1,max=5"`
}

// RatingDTO 评分详情
type RatingDTO struct {
	UserID    uint64 `json:"user_id"`
	ArticleID uint64 `json:"article_id"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

// CreateCommentDTO 发表评论
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// CommentDTO 评论详情
type CommentDTO struct {
	ID        uint64 `json:"id"`
	ArticleID uint64 `json:"article_id"`
	UserID    uint64 `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
