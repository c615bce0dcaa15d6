package consts

const (
	UserRecommendKey   = "user:recommend:"
	ArticleRatingDirty = "article:rating:dirty"
	ArticleViewKey     = "article:view:"
)
