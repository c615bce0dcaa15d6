package api

import (
	"Wayfarer/internal/api/middleware"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
			}

			// 需要登录 & 拥有 admin 角色
			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("/:user_id/ban", group.UserHandler.BanUser)
				adminGroup.POST("/:user_id/unban", group.UserHandler.UnbanUser)
				adminGroup.PUT("/:user_id/roles", group.UserHandler.ChangeRoles)
			}
		}

		profileGroup := apiGroup.Group("/profile")
		profileGroup.Use(middleware.AuthMiddleware())
		{
			profileGroup.GET("", group.ProfileHandler.GetProfile)
			profileGroup.PUT("/interests", group.ProfileHandler.UpdateInterests)
		}

		recommendGroup := apiGroup.Group("/recommendations")
		recommendGroup.Use(middleware.AuthMiddleware())
		{
			recommendGroup.GET("", group.RecommendHandler.GetRecommendations)
			recommendGroup.POST("/regenerate", group.RecommendHandler.Regenerate)
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)
		}

		articleGroup := apiGroup.Group("/articles")
		{
			articleGroup.GET("/search", group.ArticleHandler.SearchArticles)
			articleGroup.GET("/latest", group.ArticleHandler.GetLatestArticles)
			articleGroup.GET("/tag/:tag", group.ArticleHandler.GetArticlesByTag)
			articleGroup.GET("/detail/:article_id", group.ArticleHandler.GetArticle)
			articleGroup.GET("/slug/:slug", group.ArticleHandler.GetArticleBySlug)
			articleGroup.GET("/list/:user_id", group.ArticleHandler.GetArticlesByAuthor)

			// 写操作需要 WRITER 或 ADMIN 角色
			writerGroup := articleGroup.Group("")
			writerGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleWriter, consts.RoleAdmin))
			{
				writerGroup.POST("", group.ArticleHandler.CreateArticle)
				writerGroup.PUT("/:article_id", group.ArticleHandler.UpdateArticle)
				writerGroup.DELETE("/:article_id", group.ArticleHandler.DeleteArticle)
			}
		}

		actionGroup := apiGroup.Group("/article/action")
		{
			actionGroup.GET("/comments/:article_id", group.ArticleActionHandler.GetComments)

			authActionGroup := actionGroup.Group("")
			authActionGroup.Use(middleware.AuthMiddleware())
			{
				authActionGroup.POST("/ratings/:article_id", group.ArticleActionHandler.RateArticle)
				authActionGroup.GET("/ratings/:article_id", group.ArticleActionHandler.GetMyRating)
				authActionGroup.POST("/comments/:article_id", group.ArticleActionHandler.CreateComment)
				authActionGroup.DELETE("/comments/:comment_id", group.ArticleActionHandler.DeleteComment)
			}
		}

		destinationGroup := apiGroup.Group("/destinations")
		{
			destinationGroup.GET("", group.DestinationHandler.ListDestinations)
			destinationGroup.GET("/continents", group.DestinationHandler.ListContinents)
			destinationGroup.GET("/:slug", group.DestinationHandler.GetDestinationBySlug)
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("/list", group.NotificationHandler.GetNotificationList)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/read", group.NotificationHandler.MarkRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllRead)
		}
	}

	return r
}
