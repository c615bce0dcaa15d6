package api

import "Wayfarer/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler          *handler.UserHandler
	ProfileHandler       *handler.ProfileHandler
	RecommendHandler     *handler.RecommendHandler
	TagHandler           *handler.TagHandler
	ArticleHandler       *handler.ArticleHandler
	ArticleActionHandler *handler.ArticleActionHandler
	DestinationHandler   *handler.DestinationHandler
	NotificationHandler  *handler.NotificationHandler
}
