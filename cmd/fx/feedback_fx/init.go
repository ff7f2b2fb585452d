package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"postpulse/internal/api/controllers"
	"postpulse/internal/clients"
	"postpulse/internal/repositories"
	"postpulse/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	accountRepo repositories.AccountRepository,
	contentAPI clients.PlaceholderClientInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, accountRepo, contentAPI)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
