package services

import (
	"context"
	"errors"
	"strings"

	"postpulse/internal/clients"
	"postpulse/internal/models/db_models"
	"postpulse/internal/models/response_models"
	"postpulse/internal/repositories"
	"postpulse/pkg/utils"
)

// Email recorded when the identity record carries none.
const missingEmailSentinel = "unknown"

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, viewerID string, postID int, sentiment string) error
	ListFeedback(ctx context.Context) ([]response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	accountRepo  repositories.AccountRepository
	contentAPI   clients.PlaceholderClientInterface
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	accountRepo repositories.AccountRepository,
	contentAPI clients.PlaceholderClientInterface) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		accountRepo:  accountRepo,
		contentAPI:   contentAPI,
	}
}

// SubmitFeedback records a like/dislike for the viewer. Validation happens
// before any I/O; a second submission for the same (viewer, post) pair yields
// utils.ErrDuplicateFeedback and leaves the stored sentiment untouched.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, viewerID string, postID int, sentiment string) error {
	if postID <= 0 {
		return utils.ErrInvalidPostID
	}

	sentiment = strings.TrimSpace(sentiment)
	if sentiment != db_models.SentimentLike && sentiment != db_models.SentimentDislike {
		return utils.ErrInvalidSentiment
	}

	account, err := s.accountRepo.FindById(ctx, viewerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Token was valid but the account behind it is gone.
		return utils.ErrSessionExpired
	}

	if !s.contentAPI.PostExists(ctx, postID) {
		return utils.ErrPostNotFound
	}

	email := account.Email
	if email == "" {
		email = missingEmailSentinel
	}

	feedback := &db_models.Feedback{
		UserID:    account.ID.String(),
		Email:     email,
		PostID:    postID,
		Sentiment: sentiment,
	}

	err = s.feedbackRepo.CreateFeedback(ctx, feedback)
	if err == nil || errors.Is(err, utils.ErrDuplicateFeedback) {
		return err
	}
	return utils.ErrDatabaseError
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]response_models.FeedbackResponse, error) {
	feedbacks, err := s.feedbackRepo.ListFeedback(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		responses = append(responses, response_models.FeedbackResponse{
			ID:        f.ID,
			UserID:    f.UserID,
			Email:     f.Email,
			PostID:    f.PostID,
			Sentiment: f.Sentiment,
			CreatedAt: f.CreatedAt,
		})
	}

	return responses, nil
}
