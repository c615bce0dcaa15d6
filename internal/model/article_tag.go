package model

type ArticleTag struct {
	ArticleID uint64 `gorm:"primaryKey" json:"article_id"`
	TagID     uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tag_id"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
