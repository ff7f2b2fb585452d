package posts_fx

import (
	"go.uber.org/fx"

	"postpulse/internal/api/controllers"
	"postpulse/internal/clients"
	"postpulse/internal/repositories"
	"postpulse/internal/services"
)

var Module = fx.Provide(
	provideContentClient, providePostService, providePostsController,
)

func provideContentClient() clients.PlaceholderClientInterface {
	return clients.NewPlaceholderClient()
}

func providePostService(
	contentAPI clients.PlaceholderClientInterface,
	accountRepo repositories.AccountRepository,
	feedbackRepo repositories.FeedbackRepositoryInterface) services.PostServiceInterface {
	return services.NewPostService(contentAPI, accountRepo, feedbackRepo)
}

func providePostsController(postService services.PostServiceInterface) *controllers.PostsController {
	return controllers.NewPostsController(postService)
}
