package services

import (
	"context"
	"log"

	"postpulse/internal/clients"
	"postpulse/internal/models/api_models"
	"postpulse/internal/models/response_models"
	"postpulse/internal/repositories"
	"postpulse/pkg/utils"
)

type PostServiceInterface interface {
	ListPosts(ctx context.Context) []api_models.Post
	// GetPostDetail builds the detail bundle for postID. viewerID is the
	// authenticated account id, or "" for anonymous callers.
	GetPostDetail(ctx context.Context, postID int, viewerID string) (*response_models.PostDetailResponse, error)
}

type PostService struct {
	contentAPI   clients.PlaceholderClientInterface
	accountRepo  repositories.AccountRepository
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewPostService(
	contentAPI clients.PlaceholderClientInterface,
	accountRepo repositories.AccountRepository,
	feedbackRepo repositories.FeedbackRepositoryInterface) PostServiceInterface {
	return &PostService{
		contentAPI:   contentAPI,
		accountRepo:  accountRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *PostService) ListPosts(ctx context.Context) []api_models.Post {
	posts := s.contentAPI.GetPosts(ctx)
	if posts == nil {
		return []api_models.Post{}
	}
	return posts
}

func (s *PostService) GetPostDetail(ctx context.Context, postID int, viewerID string) (*response_models.PostDetailResponse, error) {
	if postID <= 0 {
		return nil, utils.ErrInvalidPostID
	}

	post := s.contentAPI.GetPost(ctx, postID)
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	// A post whose author cannot be resolved still renders.
	author := s.contentAPI.GetUser(ctx, post.UserID)

	comments := s.contentAPI.GetCommentsForPost(ctx, postID)
	if comments == nil {
		comments = []api_models.Comment{}
	}

	detail := &response_models.PostDetailResponse{
		Post:     *post,
		Author:   author,
		Comments: comments,
	}

	if viewerID != "" {
		s.attachViewerState(ctx, detail, viewerID, postID)
	}

	return detail, nil
}

// attachViewerState adds the personalization portion of the bundle. It never
// fails the request: any fault here degrades to the anonymous view of the
// same page.
func (s *PostService) attachViewerState(ctx context.Context, detail *response_models.PostDetailResponse, viewerID string, postID int) {
	detail.IsAuthenticated = true

	account, err := s.accountRepo.FindById(ctx, viewerID)
	if err != nil {
		log.Printf("post detail: resolving viewer %s: %v", viewerID, err)
		return
	}
	if account == nil {
		log.Printf("post detail: viewer %s has no account record", viewerID)
		return
	}
	detail.ViewerEmail = account.Email

	feedback, err := s.feedbackRepo.FindByUserAndPost(ctx, account.ID.String(), postID)
	if err != nil {
		log.Printf("post detail: loading feedback for viewer %s post %d: %v", viewerID, postID, err)
		return
	}
	if feedback != nil {
		detail.Feedback = &response_models.FeedbackResponse{
			ID:        feedback.ID,
			UserID:    feedback.UserID,
			Email:     feedback.Email,
			PostID:    feedback.PostID,
			Sentiment: feedback.Sentiment,
			CreatedAt: feedback.CreatedAt,
		}
	}
}
