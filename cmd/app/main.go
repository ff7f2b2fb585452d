package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"postpulse/cmd/fx/account_fx"
	"postpulse/cmd/fx/db_fx"
	"postpulse/cmd/fx/feedback_fx"
	"postpulse/cmd/fx/posts_fx"
	"postpulse/internal/api/controllers"
	"postpulse/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		posts_fx.Module,
		feedback_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	postsController *controllers.PostsController,
	feedbackController *controllers.FeedbackController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, postsController, feedbackController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	postsController *controllers.PostsController,
	feedbackController *controllers.FeedbackController,
	accountController *controllers.AccountController) {

	postsGroup := r.Group("/posts")
	postsGroup.GET("", postsController.ListPosts)
	postsGroup.GET("/:id", middleware.OptionalAuthMiddleware(), postsController.GetPostDetail)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.Use(middleware.JWTAuthMiddleware())
	feedbackGroup.POST("", feedbackController.SubmitFeedback)
	feedbackGroup.GET("", feedbackController.ListFeedback)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	r.GET("/auth/status", middleware.OptionalAuthMiddleware(), accountController.AuthStatus)
}
