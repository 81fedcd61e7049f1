package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "budget-tracker/internal/app"
	"budget-tracker/internal/bootstrap"
	"budget-tracker/internal/cache"
	"budget-tracker/internal/model"
	"budget-tracker/internal/platform/rabbitmq"
	"budget-tracker/internal/repository"
	"budget-tracker/internal/transport/http/handler"
	"budget-tracker/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	cardRepo := repository.NewCardRepository(app.MySQL)
	budgetRepo := repository.NewBudgetRepository(app.MySQL)
	txRepo := repository.NewTransactionRepository(app.MySQL)
	activityRepo := repository.NewActivityRepository(app.MySQL)

	summaryCache := cache.NewSummaryCache(app.Redis, time.Duration(app.Config.Redis.SummaryTTLSeconds)*time.Second)
	activityPublisher := rabbitmq.NewActivityEventPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	cardService := appsvc.NewCardService(cardRepo, summaryCache, activityPublisher)
	budgetService := appsvc.NewBudgetService(budgetRepo, summaryCache, activityPublisher)
	txService := appsvc.NewTransactionService(txRepo, budgetRepo, summaryCache, activityPublisher)
	summaryService := appsvc.NewSummaryService(userRepo, cardRepo, budgetRepo, txRepo, activityRepo, summaryCache)

	authHandler := handler.NewAuthHandler(authService)
	debitCardHandler := handler.NewCardHandler(cardService, model.CardKindDebit)
	creditCardHandler := handler.NewCardHandler(cardService, model.CardKindCredit)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	txHandler := handler.NewTransactionHandler(txService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)

	authGate := middleware.AuthJWT(app.Config.Auth.JWTSecret)

	userGroup := api.Group("/user", authGate)
	userGroup.GET("/data", authHandler.Me)
	userGroup.GET("/summary", summaryHandler.GetSummary)
	userGroup.GET("/activity", summaryHandler.ListActivity)

	api.GET("/analytics/spending", authGate, summaryHandler.GetSpendingAnalytics)

	registerCardRoutes(api.Group("/debit-cards", authGate), debitCardHandler)
	registerCardRoutes(api.Group("/credit-cards", authGate), creditCardHandler)

	budgetGroup := api.Group("/budgets", authGate)
	budgetGroup.GET("", budgetHandler.List)
	budgetGroup.POST("", budgetHandler.Create)
	budgetGroup.PUT("/:id", budgetHandler.Update)
	budgetGroup.DELETE("/:id", budgetHandler.Delete)

	txGroup := api.Group("/transactions", authGate)
	txGroup.GET("", txHandler.List)
	txGroup.POST("", txHandler.Create)
	txGroup.PUT("/:id", txHandler.Update)
	txGroup.DELETE("/:id", txHandler.Delete)

	return router
}

func registerCardRoutes(group *gin.RouterGroup, cardHandler *handler.CardHandler) {
	group.GET("", cardHandler.List)
	group.POST("", cardHandler.Create)
	group.PUT("/:id", cardHandler.Update)
	group.DELETE("/:id", cardHandler.Delete)
}
