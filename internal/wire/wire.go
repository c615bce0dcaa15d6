package wire

import (
	"Wayfarer/internal/api"
	"Wayfarer/internal/api/config"
	"Wayfarer/internal/api/handler"
	"Wayfarer/internal/job"
	"Wayfarer/internal/pkg/cron"
	"Wayfarer/internal/pkg/es"
	pkgmongo "Wayfarer/internal/pkg/mongo"
	"Wayfarer/internal/repository"
	"Wayfarer/internal/service"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	tagRepo := repository.NewTagRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	interestRepo := repository.NewInterestRepository(db)
	recommendRepo := repository.NewRecommendationRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)

	articleES := es.NewArticleRepo(es.Client)
	notificationRepo := pkgmongo.NewNotificationRepo(mongoDB)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	userService := service.NewUserService(userRepo, roleRepo)
	tagService := service.NewTagService(tagRepo)
	recommendService := service.NewRecommendService(interestRepo, articleRepo, ratingRepo, recommendRepo, rng)
	profileService := service.NewProfileService(userRepo, interestRepo, tagRepo, recommendService)
	destinationService := service.NewDestinationService(destinationRepo)
	articleService := service.NewArticleService(articleRepo, tagRepo, articleES, destinationService)
	notificationService := service.NewNotificationService(notificationRepo)
	actionService := service.NewArticleActionService(ratingRepo, commentRepo, articleRepo, notificationService)

	handlers := &api.HandlersGroup{
		UserHandler:          handler.NewUserHandler(userService),
		ProfileHandler:       handler.NewProfileHandler(profileService),
		RecommendHandler:     handler.NewRecommendHandler(recommendService),
		TagHandler:           handler.NewTagHandler(tagService),
		ArticleHandler:       handler.NewArticleHandler(articleService),
		ArticleActionHandler: handler.NewArticleActionHandler(actionService),
		DestinationHandler:   handler.NewDestinationHandler(destinationService),
		NotificationHandler:  handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	metricJob := job.NewArticleMetricJob(articleRepo, ratingRepo, articleES)
	cronMgr := cron.NewCronManager(metricJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
